package impl

import (
	"context"
	"testing"
	"time"

	"medops/internal/domain/entity"
	"medops/internal/domain/repository"
	mockRepo "medops/internal/mocks/repository"
	"medops/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestUserService_Login_SessionLimitEviction verifies that logging in over the
// session cap evicts the oldest session inside the login transaction.
func TestUserService_Login_SessionLimitEviction(t *testing.T) {
	fx := createTestUserService(t, 2)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LoginInput{Email: "jane.doe@example.com", Password: "Str0ngPassw0rd!"}
	authRecord := &entity.Authentication{UserID: userID, Provider: "email", PasswordHash: "hashed"}
	user := &entity.User{ID: userID, Email: input.Email, Roles: entity.Roles{entity.RolePatient}}

	oldestSessionID := uuid.New()
	existingSessions := []*entity.RefreshToken{
		{ID: uuid.New(), UserID: userID, CreatedAt: time.Now().Add(-time.Hour)},
		{ID: oldestSessionID, UserID: userID, CreatedAt: time.Now().Add(-2 * time.Hour)},
	}

	fx.authRepo.EXPECT().FindAuthentication(ctx, "email", input.Email).Return(authRecord, nil)
	fx.hasher.EXPECT().Check(input.Password, authRecord.PasswordHash).Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(userID, []string{"patient"}).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockRefreshRepo)
			mockRefreshRepo.EXPECT().FindRefreshTokensByUserID(ctx, userID).Return(existingSessions, nil)
			mockRefreshRepo.EXPECT().DeleteRefreshToken(ctx, oldestSessionID).Return(nil)
			mockRefreshRepo.EXPECT().
				CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
}

// TestUserService_Login_UnderSessionLimit verifies that no eviction happens
// while the user is under the cap.
func TestUserService_Login_UnderSessionLimit(t *testing.T) {
	fx := createTestUserService(t, 3)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LoginInput{Email: "jane.doe@example.com", Password: "Str0ngPassw0rd!"}
	authRecord := &entity.Authentication{UserID: userID, Provider: "email", PasswordHash: "hashed"}
	user := &entity.User{ID: userID, Email: input.Email, Roles: entity.Roles{entity.RolePatient}}

	existingSessions := []*entity.RefreshToken{
		{ID: uuid.New(), UserID: userID, CreatedAt: time.Now().Add(-time.Hour)},
	}

	fx.authRepo.EXPECT().FindAuthentication(ctx, "email", input.Email).Return(authRecord, nil)
	fx.hasher.EXPECT().Check(input.Password, authRecord.PasswordHash).Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(userID, []string{"patient"}).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockRefreshRepo)
			mockRefreshRepo.EXPECT().FindRefreshTokensByUserID(ctx, userID).Return(existingSessions, nil)
			mockRefreshRepo.EXPECT().
				CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output)
}
