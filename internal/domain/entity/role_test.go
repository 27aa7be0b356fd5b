package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleClinician.IsValid())
	assert.True(t, RolePatient.IsValid())
	assert.False(t, Role("superuser").IsValid())
}

func TestRoles_Contains(t *testing.T) {
	roles := Roles{RolePatient, RoleClinician}

	assert.True(t, roles.Contains(RolePatient))
	assert.False(t, roles.Contains(RoleAdmin))
}

func TestRoles_ToStrings(t *testing.T) {
	assert.Equal(t, []string{"admin", "patient"}, Roles{RoleAdmin, RolePatient}.ToStrings())
}

func TestRolesFromStrings_FiltersUnknown(t *testing.T) {
	got := RolesFromStrings([]string{"patient", "superuser", "clinician"})

	assert.Equal(t, Roles{RolePatient, RoleClinician}, got)
}
