package usecase

import (
	"context"

	"github.com/invorya/warehouse-api/internal/application/dto"
	"github.com/invorya/warehouse-api/internal/domain"
	"github.com/invorya/warehouse-api/internal/domain/authz"
	"github.com/invorya/warehouse-api/internal/domain/entity"
	"github.com/invorya/warehouse-api/internal/domain/repository"
)

// WarehouseUseCase CRUD de almacenes; toda operación exige rol ADMIN.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// Create alta de almacén.
func (uc *WarehouseUseCase) Create(ctx context.Context, p authz.Principal, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if !authz.Allowed(p.Role, authz.ActionCatalogManage) {
		return nil, domain.ErrEmployeeAccessDenied
	}
	warehouse := &entity.Warehouse{
		Base:   entity.NewBase(p.EmployeeID),
		Name:   in.Name,
		Status: entity.StatusActive,
	}
	if err := uc.repo.Create(ctx, warehouse); err != nil {
		return nil, err
	}
	return dto.ToWarehouseResponse(warehouse), nil
}

// Update parche parcial de almacén.
func (uc *WarehouseUseCase) Update(ctx context.Context, p authz.Principal, id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if !authz.Allowed(p.Role, authz.ActionCatalogManage) {
		return nil, domain.ErrEmployeeAccessDenied
	}
	warehouse, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrWarehouseNotFound
	}
	if in.Name != nil {
		warehouse.Name = *in.Name
	}
	if in.Status != nil {
		warehouse.Status = *in.Status
	}
	if err := uc.repo.Update(ctx, warehouse); err != nil {
		return nil, err
	}
	return dto.ToWarehouseResponse(warehouse), nil
}

// Delete borrado lógico de almacén.
func (uc *WarehouseUseCase) Delete(ctx context.Context, p authz.Principal, id string) error {
	if !authz.Allowed(p.Role, authz.ActionCatalogManage) {
		return domain.ErrEmployeeAccessDenied
	}
	trashed, err := uc.repo.Trash(ctx, id)
	if err != nil {
		return err
	}
	if trashed == nil {
		return domain.ErrWarehouseNotFound
	}
	return nil
}

// GetAll lista almacenes no borrados.
func (uc *WarehouseUseCase) GetAll(ctx context.Context, p authz.Principal) ([]dto.WarehouseResponse, error) {
	if !authz.Allowed(p.Role, authz.ActionCatalogManage) {
		return nil, domain.ErrEmployeeAccessDenied
	}
	list, err := uc.repo.ListNotDeleted(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		out = append(out, *dto.ToWarehouseResponse(w))
	}
	return out, nil
}

// GetOne consulta un almacén por ID.
func (uc *WarehouseUseCase) GetOne(ctx context.Context, p authz.Principal, id string) (*dto.WarehouseResponse, error) {
	if !authz.Allowed(p.Role, authz.ActionCatalogManage) {
		return nil, domain.ErrEmployeeAccessDenied
	}
	warehouse, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrWarehouseNotFound
	}
	return dto.ToWarehouseResponse(warehouse), nil
}
