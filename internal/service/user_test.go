package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dtroode/userauth-server/internal/apierrors"
	"github.com/dtroode/userauth-server/internal/mocks"
	"github.com/dtroode/userauth-server/internal/model"
	"github.com/dtroode/userauth-server/internal/service"
	"github.com/dtroode/userauth-server/internal/testutil"
)

func TestUser_Get_Success(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	lg := testutil.MakeNoopLogger()

	id := primitive.NewObjectID()
	userStore.On("GetByID", mock.Anything, id).Return(model.User{ID: id, Name: "Ana", Email: "ana@x.com"}, nil)

	s := service.NewUser(userStore, lg)

	user, err := s.Get(ctx, id.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
	assert.Equal(t, "ana@x.com", user.Email)
}

func TestUser_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	lg := testutil.MakeNoopLogger()

	id := primitive.NewObjectID()
	userStore.On("GetByID", mock.Anything, id).Return(model.User{}, model.ErrNotFound)

	s := service.NewUser(userStore, lg)

	_, err := s.Get(ctx, id.Hex())
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.HTTPCode)
}

func TestUser_Get_MalformedID(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	lg := testutil.MakeNoopLogger()

	s := service.NewUser(userStore, lg)

	_, err := s.Get(ctx, "not-an-object-id")
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.HTTPCode)
	userStore.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestUser_Get_StoreFailure(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	lg := testutil.MakeNoopLogger()

	id := primitive.NewObjectID()
	userStore.On("GetByID", mock.Anything, id).Return(model.User{}, assert.AnError)

	s := service.NewUser(userStore, lg)

	_, err := s.Get(ctx, id.Hex())
	require.Error(t, err)
	require.ErrorIs(t, err, assert.AnError)
}
