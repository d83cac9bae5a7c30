package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, s := range []string{"admin", "doctor", "receptionist", "accountant", "employee"} {
		r, err := ParseRole(s)
		require.NoError(t, err)
		assert.Equal(t, Role(s), r)
	}

	_, err := ParseRole("superuser")
	assert.Error(t, err)
	_, err = ParseRole("")
	assert.Error(t, err)
}

func TestAdminHasEveryPermission(t *testing.T) {
	for _, p := range []Permission{
		PermViewPatients, PermEditPatients, PermDeletePatients,
		PermViewAccounts, PermEditAccounts,
		PermManageEmployees, PermManageDepartments,
	} {
		assert.True(t, HasPermission(RoleAdmin, nil, p))
	}
}

func TestHasPermissionResolvesRoleDefaults(t *testing.T) {
	assert.True(t, HasPermission(RoleDoctor, nil, PermViewPatients))
	assert.True(t, HasPermission(RoleDoctor, nil, PermEditPatients))
	assert.False(t, HasPermission(RoleDoctor, nil, PermManageEmployees))

	assert.True(t, HasPermission(RoleReceptionist, nil, PermViewPatients))
	assert.False(t, HasPermission(RoleReceptionist, nil, PermEditPatients))

	assert.True(t, HasPermission(RoleAccountant, nil, PermViewAccounts))
	assert.False(t, HasPermission(RoleAccountant, nil, PermViewPatients))

	assert.False(t, HasPermission(RoleEmployee, nil, PermViewPatients))
}

func TestHasPermissionUnionsExtraPermissions(t *testing.T) {
	assert.True(t, HasPermission(RoleEmployee, []string{"viewPatients"}, PermViewPatients))
	assert.False(t, HasPermission(RoleEmployee, []string{"viewPatients"}, PermEditPatients))
}

func TestDefaultPermissionsReturnsCopy(t *testing.T) {
	perms := DefaultPermissions(RoleReceptionist)
	require.Equal(t, []string{"viewPatients"}, perms)

	perms[0] = "mutated"
	assert.Equal(t, []string{"viewPatients"}, DefaultPermissions(RoleReceptionist))

	assert.Empty(t, DefaultPermissions(RoleEmployee))
}

func TestRequiredPosition(t *testing.T) {
	pos, ok := RequiredPosition(RoleReceptionist)
	require.True(t, ok)
	assert.Equal(t, "receptionist", pos)

	pos, ok = RequiredPosition(RoleAdmin)
	require.True(t, ok)
	assert.Equal(t, "admin", pos)

	_, ok = RequiredPosition(RoleEmployee)
	assert.False(t, ok)
}
