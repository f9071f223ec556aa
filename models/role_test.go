package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	role, err := ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	role, err = ParseRole("SUPERADMIN")
	require.NoError(t, err)
	assert.Equal(t, RoleSuperAdmin, role)

	_, err = ParseRole("manager")
	assert.Error(t, err)
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleSuperAdmin.Valid())
	assert.False(t, Role("Moderator").Valid())
	assert.False(t, Role("").Valid())
}

func TestIsStaff(t *testing.T) {
	assert.True(t, RoleSuperAdmin.IsStaff())
	assert.True(t, RoleAdmin.IsStaff())
	assert.False(t, RoleUser.IsStaff())
}

func TestCanAssign(t *testing.T) {
	cases := []struct {
		name    string
		acting  Role
		target  Role
		next    Role
		allowed bool
	}{
		{"superadmin promotes user to admin", RoleSuperAdmin, RoleUser, RoleAdmin, true},
		{"superadmin promotes admin to superadmin", RoleSuperAdmin, RoleAdmin, RoleSuperAdmin, true},
		{"superadmin demotes superadmin", RoleSuperAdmin, RoleSuperAdmin, RoleUser, true},
		{"admin promotes user to admin", RoleAdmin, RoleUser, RoleAdmin, true},
		{"admin demotes admin to user", RoleAdmin, RoleAdmin, RoleUser, true},
		{"admin cannot touch superadmin", RoleAdmin, RoleSuperAdmin, RoleUser, false},
		{"admin cannot grant superadmin", RoleAdmin, RoleUser, RoleSuperAdmin, false},
		{"user assigns nothing", RoleUser, RoleUser, RoleUser, false},
		{"unknown next role rejected", RoleSuperAdmin, RoleUser, Role("Moderator"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanAssign(tc.acting, tc.target, tc.next))
		})
	}
}
