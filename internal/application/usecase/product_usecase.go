package usecase

import (
	"context"

	"github.com/invorya/warehouse-api/internal/application/dto"
	"github.com/invorya/warehouse-api/internal/domain"
	"github.com/invorya/warehouse-api/internal/domain/authz"
	"github.com/invorya/warehouse-api/internal/domain/entity"
	"github.com/invorya/warehouse-api/internal/domain/repository"
)

// ProductUseCase CRUD del catálogo de productos; toda operación exige rol ADMIN.
// Categoría y medida son opcionales pero, si se indican, deben existir y estar
// ACTIVE.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	measureRepo  repository.MeasureRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, measureRepo repository.MeasureRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, categoryRepo: categoryRepo, measureRepo: measureRepo}
}

func (uc *ProductUseCase) resolveCategory(ctx context.Context, id string) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	if category.Status != entity.StatusActive {
		return nil, domain.ErrCategoryNonActive
	}
	return category, nil
}

func (uc *ProductUseCase) resolveMeasure(ctx context.Context, id string) (*entity.Measure, error) {
	measure, err := uc.measureRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if measure == nil {
		return nil, domain.ErrMeasureNotFound
	}
	if measure.Status != entity.StatusActive {
		return nil, domain.ErrMeasureNonActive
	}
	return measure, nil
}

// Create alta de producto. El número de producto lo asigna la secuencia de la
// base de datos al insertar.
func (uc *ProductUseCase) Create(ctx context.Context, p authz.Principal, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !authz.Allowed(p.Role, authz.ActionCatalogManage) {
		return nil, domain.ErrEmployeeAccessDenied
	}
	product := &entity.Product{
		Base: entity.NewBase(p.EmployeeID),
		Name: in.Name,
	}
	if in.CategoryID != "" {
		category, err := uc.resolveCategory(ctx, in.CategoryID)
		if err != nil {
			return nil, err
		}
		product.CategoryID = category.ID
	}
	if in.MeasureID != "" {
		measure, err := uc.resolveMeasure(ctx, in.MeasureID)
		if err != nil {
			return nil, err
		}
		product.MeasureID = measure.ID
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// Update parche parcial de producto.
func (uc *ProductUseCase) Update(ctx context.Context, p authz.Principal, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if !authz.Allowed(p.Role, authz.ActionCatalogManage) {
		return nil, domain.ErrEmployeeAccessDenied
	}
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.CategoryID != nil {
		category, err := uc.resolveCategory(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		product.CategoryID = category.ID
	}
	if in.MeasureID != nil {
		measure, err := uc.resolveMeasure(ctx, *in.MeasureID)
		if err != nil {
			return nil, err
		}
		product.MeasureID = measure.ID
	}
	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// Delete borrado lógico de producto.
func (uc *ProductUseCase) Delete(ctx context.Context, p authz.Principal, id string) error {
	if !authz.Allowed(p.Role, authz.ActionCatalogManage) {
		return domain.ErrEmployeeAccessDenied
	}
	trashed, err := uc.productRepo.Trash(ctx, id)
	if err != nil {
		return err
	}
	if trashed == nil {
		return domain.ErrProductNotFound
	}
	return nil
}

// DeleteBatch borrado lógico en lote; los IDs inexistentes se ignoran.
func (uc *ProductUseCase) DeleteBatch(ctx context.Context, p authz.Principal, ids []string) error {
	if !authz.Allowed(p.Role, authz.ActionCatalogManage) {
		return domain.ErrEmployeeAccessDenied
	}
	_, err := uc.productRepo.TrashBatch(ctx, ids)
	return err
}

// GetAll lista productos no borrados.
func (uc *ProductUseCase) GetAll(ctx context.Context, p authz.Principal) ([]dto.ProductResponse, error) {
	if !authz.Allowed(p.Role, authz.ActionCatalogManage) {
		return nil, domain.ErrEmployeeAccessDenied
	}
	list, err := uc.productRepo.ListNotDeleted(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, pr := range list {
		out = append(out, *dto.ToProductResponse(pr))
	}
	return out, nil
}

// GetOne consulta un producto por ID.
func (uc *ProductUseCase) GetOne(ctx context.Context, p authz.Principal, id string) (*dto.ProductResponse, error) {
	if !authz.Allowed(p.Role, authz.ActionCatalogManage) {
		return nil, domain.ErrEmployeeAccessDenied
	}
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return dto.ToProductResponse(product), nil
}
