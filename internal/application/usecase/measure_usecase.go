package usecase

import (
	"context"

	"github.com/invorya/warehouse-api/internal/application/dto"
	"github.com/invorya/warehouse-api/internal/domain"
	"github.com/invorya/warehouse-api/internal/domain/authz"
	"github.com/invorya/warehouse-api/internal/domain/entity"
	"github.com/invorya/warehouse-api/internal/domain/repository"
)

// MeasureUseCase CRUD de unidades de medida; toda operación exige rol ADMIN.
type MeasureUseCase struct {
	repo repository.MeasureRepository
}

// NewMeasureUseCase construye el caso de uso.
func NewMeasureUseCase(repo repository.MeasureRepository) *MeasureUseCase {
	return &MeasureUseCase{repo: repo}
}

// Create alta de medida.
func (uc *MeasureUseCase) Create(ctx context.Context, p authz.Principal, in dto.CreateMeasureRequest) (*dto.MeasureResponse, error) {
	if !authz.Allowed(p.Role, authz.ActionCatalogManage) {
		return nil, domain.ErrEmployeeAccessDenied
	}
	measure := &entity.Measure{
		Base:   entity.NewBase(p.EmployeeID),
		Name:   in.Name,
		Status: entity.StatusActive,
	}
	if err := uc.repo.Create(ctx, measure); err != nil {
		return nil, err
	}
	return dto.ToMeasureResponse(measure), nil
}

// Update parche parcial; solo medidas ACTIVE se pueden modificar.
func (uc *MeasureUseCase) Update(ctx context.Context, p authz.Principal, id string, in dto.UpdateMeasureRequest) (*dto.MeasureResponse, error) {
	if !authz.Allowed(p.Role, authz.ActionCatalogManage) {
		return nil, domain.ErrEmployeeAccessDenied
	}
	measure, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if measure == nil {
		return nil, domain.ErrMeasureNotFound
	}
	if measure.Status != entity.StatusActive {
		return nil, domain.ErrMeasureNonActive
	}
	if in.Name != nil {
		measure.Name = *in.Name
	}
	if in.Status != nil {
		measure.Status = *in.Status
	}
	if err := uc.repo.Update(ctx, measure); err != nil {
		return nil, err
	}
	return dto.ToMeasureResponse(measure), nil
}

// Delete borrado lógico de medida.
func (uc *MeasureUseCase) Delete(ctx context.Context, p authz.Principal, id string) error {
	if !authz.Allowed(p.Role, authz.ActionCatalogManage) {
		return domain.ErrEmployeeAccessDenied
	}
	trashed, err := uc.repo.Trash(ctx, id)
	if err != nil {
		return err
	}
	if trashed == nil {
		return domain.ErrMeasureNotFound
	}
	return nil
}

// GetAll lista solo medidas ACTIVE no borradas.
func (uc *MeasureUseCase) GetAll(ctx context.Context, p authz.Principal) ([]dto.MeasureResponse, error) {
	if !authz.Allowed(p.Role, authz.ActionCatalogManage) {
		return nil, domain.ErrEmployeeAccessDenied
	}
	list, err := uc.repo.ListNotDeleted(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MeasureResponse, 0, len(list))
	for _, m := range list {
		if m.Status == entity.StatusActive {
			out = append(out, *dto.ToMeasureResponse(m))
		}
	}
	return out, nil
}

// GetOne consulta una medida; si existe pero no está ACTIVE el error es distinto.
func (uc *MeasureUseCase) GetOne(ctx context.Context, p authz.Principal, id string) (*dto.MeasureResponse, error) {
	if !authz.Allowed(p.Role, authz.ActionCatalogManage) {
		return nil, domain.ErrEmployeeAccessDenied
	}
	measure, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if measure == nil {
		return nil, domain.ErrMeasureNotFound
	}
	if measure.Status != entity.StatusActive {
		return nil, domain.ErrMeasureNonActive
	}
	return dto.ToMeasureResponse(measure), nil
}
