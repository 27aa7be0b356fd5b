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

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service          usecase.SessionUsecase
	txManager        *mockRepo.MockTransactionManager
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	service := NewSessionService(SessionServiceParams{
		TxManager:        txManager,
		RefreshTokenRepo: refreshTokenRepo,
		Logger:           newDiscardLogger(),
	})

	return sessionServiceFixtures{
		service:          service,
		txManager:        txManager,
		refreshTokenRepo: refreshTokenRepo,
	}
}

func TestSessionService_GetActiveSessions_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	tokens := []*entity.RefreshToken{
		{ID: uuid.New(), UserID: userID, CreatedAt: time.Now().Add(-time.Hour), ExpiresAt: time.Now().Add(time.Hour)},
		{ID: uuid.New(), UserID: userID, CreatedAt: time.Now().Add(-2 * time.Hour), ExpiresAt: time.Now().Add(-time.Minute)},
	}

	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokensByUserID(ctx, userID).
		Return(tokens, nil)

	sessions, err := fx.service.GetActiveSessions(ctx, userID)

	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, tokens[0].ID, sessions[0].ID)
	assert.True(t, sessions[0].IsActive)
	assert.False(t, sessions[1].IsActive)
}

func TestSessionService_RevokeSession_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()
	token := &entity.RefreshToken{ID: sessionID, UserID: userID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockRefreshRepo)
			mockRefreshRepo.EXPECT().FindRefreshTokenByID(ctx, sessionID).Return(token, nil)
			mockRefreshRepo.EXPECT().DeleteRefreshToken(ctx, sessionID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.RevokeSession(ctx, userID, sessionID)

	require.NoError(t, err)
}

func TestSessionService_RevokeAllSessions_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.refreshTokenRepo.EXPECT().
		DeleteRefreshTokensByUserID(ctx, userID).
		Return(nil)

	err := fx.service.RevokeAllSessions(ctx, userID)

	require.NoError(t, err)
}

func TestSessionService_RevokeAllOtherSessions_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	currentSessionID := uuid.New()
	otherSessionID := uuid.New()
	tokens := []*entity.RefreshToken{
		{ID: currentSessionID, UserID: userID},
		{ID: otherSessionID, UserID: userID},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockRefreshRepo)
			mockRefreshRepo.EXPECT().FindRefreshTokensByUserID(ctx, userID).Return(tokens, nil)
			mockRefreshRepo.EXPECT().DeleteRefreshToken(ctx, otherSessionID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.RevokeAllOtherSessions(ctx, userID, currentSessionID)

	require.NoError(t, err)
}

func TestSessionService_CleanupExpiredSessions_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.refreshTokenRepo.EXPECT().
		DeleteExpiredRefreshTokens(ctx).
		Return(nil)

	err := fx.service.CleanupExpiredSessions(ctx)

	require.NoError(t, err)
}
