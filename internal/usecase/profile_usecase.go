// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"medops/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput defines the editable profile fields. Nil fields are left
// unchanged.
type UpdateProfileInput struct {
	FirstName   *string    `json:"first_name,omitempty"`
	LastName    *string    `json:"last_name,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
}

// ListUsersInput defines the directory listing filters.
type ListUsersInput struct {
	Role   string
	Limit  int
	Offset int
}

// ProfileUsecase defines the interface for profile and user directory operations.
type ProfileUsecase interface {
	// GetProfile retrieves a user's profile, roles included.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile modifies the editable profile fields of a user.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)

	// ListUsers retrieves the user directory, optionally filtered by role name.
	ListUsers(ctx context.Context, input *ListUsersInput) ([]*entity.User, error)

	// SetRoles replaces the role set attached to a user.
	SetRoles(ctx context.Context, userID uuid.UUID, roles []string) (*entity.User, error)

	// DeleteUser removes a user account.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}
