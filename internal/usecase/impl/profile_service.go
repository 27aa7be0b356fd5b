// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "medops/internal/delivery/context"
	"medops/internal/domain/entity"
	domainerrors "medops/internal/domain/errors"
	"medops/internal/domain/repository"
	"medops/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultUserPageSize = 50

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves a user's profile, roles included.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile modifies the editable profile fields of a user.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating profile", slog.Any("userID", userID))

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if input.FirstName != nil {
			user.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			user.LastName = *input.LastName
		}
		if input.DateOfBirth != nil {
			user.DateOfBirth = input.DateOfBirth
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		updated = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Any("error", err), slog.Any("userID", userID))

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}
	srv.log(ctx).Debug("Profile updated", slog.Any("userID", userID))

	return updated, nil
}

// ListUsers retrieves the user directory, optionally filtered by role name.
func (srv *profileService) ListUsers(ctx context.Context, input *usecase.ListUsersInput) ([]*entity.User, error) {
	var roleFilter *entity.Role
	if input.Role != "" {
		role := entity.Role(input.Role)
		if !role.IsValid() {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown role name")
		}
		roleFilter = &role
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultUserPageSize
	}

	users, err := srv.userRepo.List(ctx, roleFilter, limit, input.Offset)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// SetRoles replaces the role set attached to a user.
func (srv *profileService) SetRoles(ctx context.Context, userID uuid.UUID, roles []string) (*entity.User, error) {
	srv.log(ctx).Info("Setting user roles", slog.Any("userID", userID), slog.Any("roles", roles))

	desired := entity.RolesFromStrings(roles)
	if len(desired) != len(roles) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown role name")
	}
	if len(desired) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "at least one role is required")
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		for _, role := range user.Roles {
			if !desired.Contains(role) {
				if err := userRepo.RemoveRole(ctx, userID, role); err != nil {
					return errors.Wrap(err, "failed to remove role")
				}
			}
		}
		for _, role := range desired {
			if !user.Roles.Contains(role) {
				if err := userRepo.AssignRole(ctx, userID, role); err != nil {
					return errors.Wrap(err, "failed to assign role")
				}
			}
		}

		user.Roles = desired
		updated = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to set user roles", slog.Any("error", err), slog.Any("userID", userID))

		return nil, errors.Wrap(err, "failed to execute role update transaction")
	}

	return updated, nil
}

// DeleteUser removes a user account.
func (srv *profileService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Deleting user", slog.Any("userID", userID))

	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}
		srv.log(ctx).Error("Failed to delete user", slog.Any("error", err), slog.Any("userID", userID))

		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}
