// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// A user may be a patient, a clinician, an administrator, or any combination,
// depending on the roles attached to the account.
type User struct {
	ID          uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Email       string     // The user's primary contact email, used as the login identifier.
	FirstName   string     // The user's given name.
	LastName    string     // The user's family name.
	DateOfBirth *time.Time // The user's date of birth. Nil when not recorded.
	Roles       Roles      // The roles attached to this account.
	CreatedAt   time.Time  // Timestamp of when this user account was created.
	UpdatedAt   time.Time  // Timestamp of the last modification to this user's data.
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}

// CareRelationship links a patient to a member of the medical staff
// responsible for their care. The pair is unique.
type CareRelationship struct {
	PatientID   uuid.UUID // The patient side of the relationship.
	ClinicianID uuid.UUID // The clinician (medical staff) side of the relationship.
	CreatedAt   time.Time // Timestamp of when the relationship was established.
}
