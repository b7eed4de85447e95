package token

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestJWT_Roundtrip(t *testing.T) {
	j := NewJWT("secret")
	id := primitive.NewObjectID().Hex()

	tok, err := j.Generate(id)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	got, err := j.Parse(tok)
	require.NoError(t, err)
	require.Equal(t, id, got)
}

func TestJWT_WrongSecret(t *testing.T) {
	j := NewJWT("secret")
	other := NewJWT("othersecret")

	tok, err := j.Generate(primitive.NewObjectID().Hex())
	require.NoError(t, err)

	_, err = other.Parse(tok)
	require.Error(t, err)
}

func TestJWT_Garbage(t *testing.T) {
	j := NewJWT("secret")

	_, err := j.Parse("not.a.token")
	require.Error(t, err)

	_, err = j.Parse("")
	require.Error(t, err)
}

func TestJWT_WrongSigningMethod(t *testing.T) {
	j := NewJWT("secret")

	// alg=none token with an empty signature segment.
	noneToken := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJpZCI6ImFiYyJ9."
	_, err := j.Parse(noneToken)
	require.Error(t, err)
}
