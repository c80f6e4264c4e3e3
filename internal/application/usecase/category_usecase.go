package usecase

import (
	"context"

	"github.com/invorya/warehouse-api/internal/application/dto"
	"github.com/invorya/warehouse-api/internal/domain"
	"github.com/invorya/warehouse-api/internal/domain/authz"
	"github.com/invorya/warehouse-api/internal/domain/entity"
	"github.com/invorya/warehouse-api/internal/domain/repository"
)

// CategoryUseCase CRUD del árbol de categorías; toda operación exige rol ADMIN.
// Una categoría no se puede borrar mientras tenga hijas o productos vivos.
type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo, productRepo: productRepo}
}

// Create alta de categoría; si se indica padre, debe existir y no estar borrado.
func (uc *CategoryUseCase) Create(ctx context.Context, p authz.Principal, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if !authz.Allowed(p.Role, authz.ActionCatalogManage) {
		return nil, domain.ErrEmployeeAccessDenied
	}
	if in.ParentCategoryID != "" {
		parent, err := uc.categoryRepo.GetByID(ctx, in.ParentCategoryID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrCategoryNotFound
		}
	}
	category := &entity.Category{
		Base:     entity.NewBase(p.EmployeeID),
		Name:     in.Name,
		Status:   entity.StatusActive,
		ParentID: in.ParentCategoryID,
	}
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return dto.ToCategoryResponse(category), nil
}

// Update parche parcial; solo categorías ACTIVE se pueden modificar.
func (uc *CategoryUseCase) Update(ctx context.Context, p authz.Principal, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if !authz.Allowed(p.Role, authz.ActionCatalogManage) {
		return nil, domain.ErrEmployeeAccessDenied
	}
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
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Status != nil {
		category.Status = *in.Status
	}
	if in.ParentCategoryID != nil {
		parent, err := uc.categoryRepo.GetByID(ctx, *in.ParentCategoryID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrCategoryNotFound
		}
		category.ParentID = parent.ID
	}
	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return dto.ToCategoryResponse(category), nil
}

// Delete borrado lógico. Se rechaza si alguna categoría viva la referencia como
// padre o si algún producto vivo pertenece a ella (barrido lineal, sin contador).
func (uc *CategoryUseCase) Delete(ctx context.Context, p authz.Principal, id string) error {
	if !authz.Allowed(p.Role, authz.ActionCatalogManage) {
		return domain.ErrEmployeeAccessDenied
	}
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrCategoryNotFound
	}

	categories, err := uc.categoryRepo.ListNotDeleted(ctx)
	if err != nil {
		return err
	}
	for _, c := range categories {
		if c.ParentID == category.ID {
			return domain.ErrCategoryHasChildren
		}
	}

	products, err := uc.productRepo.ListNotDeleted(ctx)
	if err != nil {
		return err
	}
	for _, pr := range products {
		if pr.CategoryID == category.ID {
			return domain.ErrCategoryHasProducts
		}
	}

	_, err = uc.categoryRepo.Trash(ctx, category.ID)
	return err
}

// GetAll lista solo categorías ACTIVE no borradas.
func (uc *CategoryUseCase) GetAll(ctx context.Context, p authz.Principal) ([]dto.CategoryResponse, error) {
	if !authz.Allowed(p.Role, authz.ActionCatalogManage) {
		return nil, domain.ErrEmployeeAccessDenied
	}
	list, err := uc.categoryRepo.ListNotDeleted(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		if c.Status == entity.StatusActive {
			out = append(out, *dto.ToCategoryResponse(c))
		}
	}
	return out, nil
}

// GetOne consulta una categoría; si existe pero no está ACTIVE el error es distinto.
func (uc *CategoryUseCase) GetOne(ctx context.Context, p authz.Principal, id string) (*dto.CategoryResponse, error) {
	if !authz.Allowed(p.Role, authz.ActionCatalogManage) {
		return nil, domain.ErrEmployeeAccessDenied
	}
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
	return dto.ToCategoryResponse(category), nil
}
