package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/invorya/warehouse-api/internal/application/dto"
	"github.com/invorya/warehouse-api/internal/application/usecase"
	"github.com/invorya/warehouse-api/internal/domain"
	"github.com/invorya/warehouse-api/internal/domain/authz"
	"github.com/invorya/warehouse-api/internal/domain/entity"
)

func newEmployeeFixture() (*usecase.EmployeeUseCase, *fakeEmployeeRepo, *fakeWarehouseRepo) {
	employees := &fakeEmployeeRepo{items: map[string]*entity.Employee{}}
	warehouses := &fakeWarehouseRepo{items: map[string]*entity.Warehouse{
		"wh-1": {Base: entity.Base{ID: "wh-1"}, Name: "Central", Status: entity.StatusActive},
	}}
	return usecase.NewEmployeeUseCase(employees, warehouses), employees, warehouses
}

func TestEmployeeCreate_RolLoDeterminaElActor(t *testing.T) {
	uc, employees, _ := newEmployeeFixture()
	ctx := context.Background()

	in := dto.CreateEmployeeRequest{
		Name: "Ana", Surname: "Gómez", PhoneNumber: "555-0001",
		Password: "secreta123", WarehouseID: "wh-1",
	}

	// MANAGER crea ADMIN
	out, err := uc.Create(ctx, managerPrincipal(), in)
	require.NoError(t, err)
	assert.Equal(t, string(authz.RoleAdmin), out.Role)
	assert.NotZero(t, out.EmployeeNumber)

	// ADMIN crea EMPLOYEE
	out, err = uc.Create(ctx, adminPrincipal(), in)
	require.NoError(t, err)
	assert.Equal(t, string(authz.RoleEmployee), out.Role)

	// EMPLOYEE no crea a nadie
	_, err = uc.Create(ctx, employeePrincipal(), in)
	assert.ErrorIs(t, err, domain.ErrEmployeeAccessDenied)

	// La contraseña queda con hash bcrypt, nunca en claro.
	for _, e := range employees.items {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte("secreta123")))
	}
}

func TestEmployeeCreate_AlmacenInexistente(t *testing.T) {
	uc, _, _ := newEmployeeFixture()

	_, err := uc.Create(context.Background(), managerPrincipal(), dto.CreateEmployeeRequest{
		Name: "Ana", Surname: "Gómez", Password: "x", WarehouseID: "wh-nope",
	})
	assert.ErrorIs(t, err, domain.ErrWarehouseNotFound)
}

func TestEmployeeUpdate_SoloRolGestionado(t *testing.T) {
	uc, employees, _ := newEmployeeFixture()
	ctx := context.Background()
	employees.items["emp-a"] = &entity.Employee{
		Base: entity.Base{ID: "emp-a"}, Name: "Luis", Surname: "Mora",
		Role: authz.RoleAdmin, Status: entity.StatusActive, WarehouseID: "wh-1",
	}

	name := "Luisa"
	// Un ADMIN no puede editar a otro ADMIN: gestiona solo EMPLOYEE.
	_, err := uc.Update(ctx, adminPrincipal(), "emp-a", dto.UpdateEmployeeRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrEmployeeAccessDenied)

	// El MANAGER sí.
	out, err := uc.Update(ctx, managerPrincipal(), "emp-a", dto.UpdateEmployeeRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Luisa", out.Name)
}

func TestEmployeeDelete_BorradoLogico(t *testing.T) {
	uc, employees, _ := newEmployeeFixture()
	employees.items["emp-e"] = &entity.Employee{
		Base: entity.Base{ID: "emp-e"}, Role: authz.RoleEmployee, Status: entity.StatusActive,
	}

	require.NoError(t, uc.Delete(context.Background(), adminPrincipal(), "emp-e"))
	assert.True(t, employees.items["emp-e"].Deleted)

	// Ya borrado: desaparece de las lecturas.
	err := uc.Delete(context.Background(), adminPrincipal(), "emp-e")
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestEmployeeGetAll_VisibilidadPorRol(t *testing.T) {
	uc, employees, _ := newEmployeeFixture()
	ctx := context.Background()
	employees.items["e1"] = &entity.Employee{Base: entity.Base{ID: "e1"}, Role: authz.RoleManager, Status: entity.StatusActive}
	employees.items["e2"] = &entity.Employee{Base: entity.Base{ID: "e2"}, Role: authz.RoleAdmin, Status: entity.StatusActive}
	employees.items["e3"] = &entity.Employee{Base: entity.Base{ID: "e3"}, Role: authz.RoleEmployee, Status: entity.StatusActive}

	asManager, err := uc.GetAll(ctx, managerPrincipal())
	require.NoError(t, err)
	assert.Len(t, asManager, 2, "MANAGER ve ADMIN y EMPLOYEE, nunca otros MANAGER")

	asAdmin, err := uc.GetAll(ctx, adminPrincipal())
	require.NoError(t, err)
	require.Len(t, asAdmin, 1)
	assert.Equal(t, string(authz.RoleEmployee), asAdmin[0].Role)

	_, err = uc.GetAll(ctx, employeePrincipal())
	assert.ErrorIs(t, err, domain.ErrEmployeeAccessDenied)
}

func TestEmployeeGetOne_FueraDeVisibilidad(t *testing.T) {
	uc, employees, _ := newEmployeeFixture()
	employees.items["e1"] = &entity.Employee{Base: entity.Base{ID: "e1"}, Role: authz.RoleManager, Status: entity.StatusActive}

	_, err := uc.GetOne(context.Background(), adminPrincipal(), "e1")
	assert.ErrorIs(t, err, domain.ErrEmployeeAccessDenied)
}
