package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"folio/internal/domain"
	"folio/internal/service"
	"folio/mocks"
)

func TestUserList_ClampsPaging(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	repo.On("List", mock.Anything, "kim", 0, 20).
		Return([]domain.User{{Email: "kim@example.com"}}, 1, nil)

	svc := service.NewUserService(repo)
	users, total, err := svc.List(context.Background(), "kim", 0, 9999)

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, users, 1)
	repo.AssertExpectations(t)
}

func TestUserList_OffsetFromPage(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	repo.On("List", mock.Anything, "", 40, 20).Return([]domain.User{}, 100, nil)

	svc := service.NewUserService(repo)
	_, _, err := svc.List(context.Background(), "", 3, 20)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUserGet_NotFound(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	repo.On("GetByID", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

	svc := service.NewUserService(repo)
	_, err := svc.Get(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserDelete(t *testing.T) {
	id := uuid.New()
	repo := new(mocks.MockUserRepo)
	repo.On("Delete", mock.Anything, id).Return(nil)

	svc := service.NewUserService(repo)
	require.NoError(t, svc.Delete(context.Background(), id))
	repo.AssertExpectations(t)
}
