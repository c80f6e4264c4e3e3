package usecase

import (
	"context"

	"github.com/invorya/warehouse-api/internal/application/dto"
	"github.com/invorya/warehouse-api/internal/domain"
	"github.com/invorya/warehouse-api/internal/domain/authz"
	"github.com/invorya/warehouse-api/internal/domain/entity"
	"github.com/invorya/warehouse-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// EmployeeUseCase gestión de cuentas de empleado bajo la jerarquía
// MANAGER→ADMIN→EMPLOYEE: cada actor solo crea, edita y consulta el rol
// inmediatamente inferior.
type EmployeeUseCase struct {
	employeeRepo  repository.EmployeeRepository
	warehouseRepo repository.WarehouseRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(employeeRepo repository.EmployeeRepository, warehouseRepo repository.WarehouseRepository) *EmployeeUseCase {
	return &EmployeeUseCase{employeeRepo: employeeRepo, warehouseRepo: warehouseRepo}
}

// Create alta de empleado. El rol del nuevo empleado lo determina el actor:
// un MANAGER crea cuentas ADMIN y un ADMIN crea cuentas EMPLOYEE.
func (uc *EmployeeUseCase) Create(ctx context.Context, p authz.Principal, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	role, ok := authz.ManagedRole(p.Role)
	if !ok {
		return nil, domain.ErrEmployeeAccessDenied
	}

	warehouse, err := uc.warehouseRepo.GetByID(ctx, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrWarehouseNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	employee := &entity.Employee{
		Base:         entity.NewBase(p.EmployeeID),
		Name:         in.Name,
		Surname:      in.Surname,
		PhoneNumber:  in.PhoneNumber,
		PasswordHash: string(hash),
		WarehouseID:  warehouse.ID,
		Role:         role,
		Status:       entity.StatusActive,
	}
	if err := uc.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return dto.ToEmployeeResponse(employee), nil
}

// Update parche parcial sobre un empleado que el actor tenga permiso de gestionar.
func (uc *EmployeeUseCase) Update(ctx context.Context, p authz.Principal, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	target, err := uc.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	if managed, ok := authz.ManagedRole(p.Role); !ok || target.Role != managed {
		return nil, domain.ErrEmployeeAccessDenied
	}

	if in.Name != nil {
		target.Name = *in.Name
	}
	if in.Surname != nil {
		target.Surname = *in.Surname
	}
	if in.PhoneNumber != nil {
		target.PhoneNumber = *in.PhoneNumber
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		target.PasswordHash = string(hash)
	}
	if in.WarehouseID != nil {
		warehouse, err := uc.warehouseRepo.GetByID(ctx, *in.WarehouseID)
		if err != nil {
			return nil, err
		}
		if warehouse == nil {
			return nil, domain.ErrWarehouseNotFound
		}
		target.WarehouseID = warehouse.ID
	}
	if in.Status != nil {
		target.Status = *in.Status
	}

	if err := uc.employeeRepo.Update(ctx, target); err != nil {
		return nil, err
	}
	return dto.ToEmployeeResponse(target), nil
}

// Delete borrado lógico de un empleado gestionable por el actor.
func (uc *EmployeeUseCase) Delete(ctx context.Context, p authz.Principal, id string) error {
	target, err := uc.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrEmployeeNotFound
	}
	if managed, ok := authz.ManagedRole(p.Role); !ok || target.Role != managed {
		return domain.ErrEmployeeAccessDenied
	}
	_, err = uc.employeeRepo.Trash(ctx, target.ID)
	return err
}

// GetAll lista los empleados visibles para el actor: MANAGER ve ADMIN y
// EMPLOYEE, ADMIN ve solo EMPLOYEE.
func (uc *EmployeeUseCase) GetAll(ctx context.Context, p authz.Principal) ([]dto.EmployeeResponse, error) {
	visible := authz.VisibleRoles(p.Role)
	if visible == nil {
		return nil, domain.ErrEmployeeAccessDenied
	}
	all, err := uc.employeeRepo.ListNotDeleted(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(all))
	for _, e := range all {
		for _, r := range visible {
			if e.Role == r {
				out = append(out, *dto.ToEmployeeResponse(e))
				break
			}
		}
	}
	return out, nil
}

// GetOne consulta un empleado visible para el actor.
func (uc *EmployeeUseCase) GetOne(ctx context.Context, p authz.Principal, id string) (*dto.EmployeeResponse, error) {
	target, err := uc.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	for _, r := range authz.VisibleRoles(p.Role) {
		if target.Role == r {
			return dto.ToEmployeeResponse(target), nil
		}
	}
	return nil, domain.ErrEmployeeAccessDenied
}
