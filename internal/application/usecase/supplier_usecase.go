package usecase

import (
	"context"

	"github.com/invorya/warehouse-api/internal/application/dto"
	"github.com/invorya/warehouse-api/internal/domain"
	"github.com/invorya/warehouse-api/internal/domain/authz"
	"github.com/invorya/warehouse-api/internal/domain/entity"
	"github.com/invorya/warehouse-api/internal/domain/repository"
)

// SupplierUseCase CRUD de proveedores; toda operación exige rol ADMIN.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create alta de proveedor.
func (uc *SupplierUseCase) Create(ctx context.Context, p authz.Principal, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if !authz.Allowed(p.Role, authz.ActionCatalogManage) {
		return nil, domain.ErrEmployeeAccessDenied
	}
	supplier := &entity.Supplier{
		Base:        entity.NewBase(p.EmployeeID),
		Name:        in.Name,
		PhoneNumber: in.PhoneNumber,
	}
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return dto.ToSupplierResponse(supplier), nil
}

// Update parche parcial de proveedor.
func (uc *SupplierUseCase) Update(ctx context.Context, p authz.Principal, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	if !authz.Allowed(p.Role, authz.ActionCatalogManage) {
		return nil, domain.ErrEmployeeAccessDenied
	}
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrSupplierNotFound
	}
	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.PhoneNumber != nil {
		supplier.PhoneNumber = *in.PhoneNumber
	}
	if err := uc.repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return dto.ToSupplierResponse(supplier), nil
}

// Delete borrado lógico de proveedor.
func (uc *SupplierUseCase) Delete(ctx context.Context, p authz.Principal, id string) error {
	if !authz.Allowed(p.Role, authz.ActionCatalogManage) {
		return domain.ErrEmployeeAccessDenied
	}
	trashed, err := uc.repo.Trash(ctx, id)
	if err != nil {
		return err
	}
	if trashed == nil {
		return domain.ErrSupplierNotFound
	}
	return nil
}

// GetAll lista proveedores no borrados.
func (uc *SupplierUseCase) GetAll(ctx context.Context, p authz.Principal) ([]dto.SupplierResponse, error) {
	if !authz.Allowed(p.Role, authz.ActionCatalogManage) {
		return nil, domain.ErrEmployeeAccessDenied
	}
	list, err := uc.repo.ListNotDeleted(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *dto.ToSupplierResponse(s))
	}
	return out, nil
}

// GetOne consulta un proveedor por ID.
func (uc *SupplierUseCase) GetOne(ctx context.Context, p authz.Principal, id string) (*dto.SupplierResponse, error) {
	if !authz.Allowed(p.Role, authz.ActionCatalogManage) {
		return nil, domain.ErrEmployeeAccessDenied
	}
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrSupplierNotFound
	}
	return dto.ToSupplierResponse(supplier), nil
}
