package service

import (
	"context"
	"testing"

	"github.com/fundvista/fund-api/internal/logger"
	"github.com/fundvista/fund-api/internal/mock"
	"github.com/fundvista/fund-api/internal/store"
	"github.com/fundvista/fund-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockCustomerRepository) {
	t.Helper()
	mockCustomers := mock.NewMockCustomerRepository(ctrl)

	svc := NewAuthService(mockCustomers, logger.Nop()).(*authService)

	return svc, mockCustomers
}

// mustHash produces a real bcrypt hash so Login exercises the same
// comparison path it runs in production.
func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCustomers := newTestAuthService(t, ctrl)
	ctx := context.Background()

	stored := models.Customer{
		CustomerID:   7,
		Name:         "Siriporn K.",
		Email:        "siriporn@example.com",
		PasswordHash: mustHash(t, "hunter2horse"),
	}

	mockCustomers.EXPECT().
		FindByEmail(ctx, "siriporn@example.com").
		Return(stored, nil)

	got, err := svc.Login(ctx, models.LoginRequest{
		Email:    "siriporn@example.com",
		Password: "hunter2horse",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.CustomerID)
	assert.Equal(t, "siriporn@example.com", got.Email)
	assert.Empty(t, got.PasswordHash, "hash must be cleared before leaving the service")
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	tests := []struct {
		name    string
		request models.LoginRequest
	}{
		{name: "empty email", request: models.LoginRequest{Password: "secret"}},
		{name: "empty password", request: models.LoginRequest{Email: "a@b.c"}},
		{name: "both empty", request: models.LoginRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// no repository call is expected
			svc, _ := newTestAuthService(t, ctrl)

			_, err := svc.Login(context.Background(), tt.request)
			require.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCustomers := newTestAuthService(t, ctrl)
	ctx := context.Background()

	mockCustomers.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(models.Customer{}, store.ErrCustomerNotFound)

	_, err := svc.Login(ctx, models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	require.ErrorIs(t, err, store.ErrCustomerNotFound)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCustomers := newTestAuthService(t, ctrl)
	ctx := context.Background()

	stored := models.Customer{
		CustomerID:   7,
		Email:        "siriporn@example.com",
		PasswordHash: mustHash(t, "the-real-password"),
	}

	mockCustomers.EXPECT().
		FindByEmail(ctx, "siriporn@example.com").
		Return(stored, nil)

	_, err := svc.Login(ctx, models.LoginRequest{
		Email:    "siriporn@example.com",
		Password: "a-wrong-guess",
	})

	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCustomers := newTestAuthService(t, ctrl)
	ctx := context.Background()

	mockCustomers.EXPECT().
		FindByEmail(ctx, "siriporn@example.com").
		Return(models.Customer{}, store.ErrDatabaseUnavailable)

	_, err := svc.Login(ctx, models.LoginRequest{
		Email:    "siriporn@example.com",
		Password: "hunter2horse",
	})

	require.ErrorIs(t, err, store.ErrDatabaseUnavailable)
	assert.Contains(t, err.Error(), "customer search by email failed")
}

func TestVerifyPassword(t *testing.T) {
	hash := mustHash(t, "correct horse battery staple")

	assert.True(t, verifyPassword("correct horse battery staple", hash))
	assert.False(t, verifyPassword("incorrect horse", hash))
	assert.False(t, verifyPassword("correct horse battery staple", "not-a-bcrypt-hash"))
}
