package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/invorya/warehouse-api/internal/domain/authz"
)

func TestAllowed_TablaDePolitica(t *testing.T) {
	cases := []struct {
		role    authz.Role
		action  authz.Action
		allowed bool
	}{
		{authz.RoleManager, authz.ActionEmployeeManage, true},
		{authz.RoleAdmin, authz.ActionEmployeeManage, true},
		{authz.RoleEmployee, authz.ActionEmployeeManage, false},

		{authz.RoleAdmin, authz.ActionCatalogManage, true},
		{authz.RoleManager, authz.ActionCatalogManage, false},
		{authz.RoleEmployee, authz.ActionCatalogManage, false},

		{authz.RoleAdmin, authz.ActionStatisticsView, true},
		{authz.RoleEmployee, authz.ActionStatisticsView, false},

		{authz.RoleAdmin, authz.ActionStockIn, true},
		{authz.RoleEmployee, authz.ActionStockIn, false},
		{authz.RoleEmployee, authz.ActionStockOut, true},
		{authz.RoleAdmin, authz.ActionStockOut, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, authz.Allowed(tc.role, tc.action),
			"rol %s acción %s", tc.role, tc.action)
	}
}

func TestAllowed_RolDesconocidoSiempreNegado(t *testing.T) {
	assert.False(t, authz.Allowed(authz.Role("SUPERUSER"), authz.ActionCatalogManage))
	assert.False(t, authz.Allowed(authz.Role(""), authz.ActionEmployeeManage))
}

func TestManagedRole_Jerarquia(t *testing.T) {
	managed, ok := authz.ManagedRole(authz.RoleManager)
	assert.True(t, ok)
	assert.Equal(t, authz.RoleAdmin, managed, "MANAGER gestiona cuentas ADMIN")

	managed, ok = authz.ManagedRole(authz.RoleAdmin)
	assert.True(t, ok)
	assert.Equal(t, authz.RoleEmployee, managed, "ADMIN gestiona cuentas EMPLOYEE")

	_, ok = authz.ManagedRole(authz.RoleEmployee)
	assert.False(t, ok, "EMPLOYEE no gestiona a nadie")
}

func TestVisibleRoles(t *testing.T) {
	assert.Equal(t, []authz.Role{authz.RoleAdmin, authz.RoleEmployee}, authz.VisibleRoles(authz.RoleManager))
	assert.Equal(t, []authz.Role{authz.RoleEmployee}, authz.VisibleRoles(authz.RoleAdmin))
	assert.Nil(t, authz.VisibleRoles(authz.RoleEmployee))
}

func TestTransactionAllowed_PorDireccion(t *testing.T) {
	assert.True(t, authz.TransactionAllowed(authz.RoleAdmin, "STOCK_IN"))
	assert.False(t, authz.TransactionAllowed(authz.RoleEmployee, "STOCK_IN"))
	assert.True(t, authz.TransactionAllowed(authz.RoleEmployee, "STOCK_OUT"))
	assert.False(t, authz.TransactionAllowed(authz.RoleAdmin, "STOCK_OUT"))
	assert.False(t, authz.TransactionAllowed(authz.RoleManager, "STOCK_IN"))
}

func TestTransactionAllowed_TipoDesconocidoSinRestriccion(t *testing.T) {
	// Tipos fuera de STOCK_IN/STOCK_OUT no están gobernados por la política.
	assert.True(t, authz.TransactionAllowed(authz.RoleEmployee, "ADJUSTMENT"))
	assert.True(t, authz.TransactionAllowed(authz.RoleManager, "TRANSFER"))
}

func TestRoleValid(t *testing.T) {
	assert.True(t, authz.RoleManager.Valid())
	assert.True(t, authz.RoleAdmin.Valid())
	assert.True(t, authz.RoleEmployee.Valid())
	assert.False(t, authz.Role("OTHER").Valid())
}
