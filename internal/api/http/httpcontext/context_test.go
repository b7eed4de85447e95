package httpcontext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager_SetAndGetUserID(t *testing.T) {
	t.Parallel()

	m := NewManager()
	ctx := m.SetUserIDToContext(context.Background(), "64f1c0ffee0000000000abcd")

	userID, ok := m.GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "64f1c0ffee0000000000abcd", userID)
}

func TestManager_GetUserID_Missing(t *testing.T) {
	t.Parallel()

	m := NewManager()

	_, ok := m.GetUserIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestManager_GetUserID_Empty(t *testing.T) {
	t.Parallel()

	m := NewManager()
	ctx := m.SetUserIDToContext(context.Background(), "")

	_, ok := m.GetUserIDFromContext(ctx)
	assert.False(t, ok)
}
