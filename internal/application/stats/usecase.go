package stats

import (
	"context"
	"time"

	"github.com/invorya/warehouse-api/internal/application/dto"
	"github.com/invorya/warehouse-api/internal/domain"
	"github.com/invorya/warehouse-api/internal/domain/authz"
	"github.com/invorya/warehouse-api/internal/domain/repository"
)

// StatisticsUseCase agregaciones diarias sobre el libro de movimientos.
// Solo visibles para rol ADMIN.
type StatisticsUseCase struct {
	repo repository.StatsRepository
}

// NewStatisticsUseCase construye el caso de uso.
func NewStatisticsUseCase(repo repository.StatsRepository) *StatisticsUseCase {
	return &StatisticsUseCase{repo: repo}
}

// DailyIn entradas del día agregadas por producto (cantidad y monto).
func (uc *StatisticsUseCase) DailyIn(ctx context.Context, p authz.Principal, date time.Time) ([]dto.DailyInStat, error) {
	if !authz.Allowed(p.Role, authz.ActionStatisticsView) {
		return nil, domain.ErrEmployeeAccessDenied
	}
	rows, err := uc.repo.DailyIn(ctx, date)
	if err != nil {
		return nil, err
	}
	return dto.ToDailyInStats(rows), nil
}

// DailyTopOut salidas del día agregadas por producto, mayor cantidad primero.
func (uc *StatisticsUseCase) DailyTopOut(ctx context.Context, p authz.Principal, date time.Time) ([]dto.DailyOutStat, error) {
	if !authz.Allowed(p.Role, authz.ActionStatisticsView) {
		return nil, domain.ErrEmployeeAccessDenied
	}
	rows, err := uc.repo.DailyTopOut(ctx, date)
	if err != nil {
		return nil, err
	}
	return dto.ToDailyOutStats(rows), nil
}

// Expired cantidad acumulada por producto de líneas ya vencidas a la fecha dada.
func (uc *StatisticsUseCase) Expired(ctx context.Context, p authz.Principal, date time.Time) ([]dto.ExpiredProductStat, error) {
	if !authz.Allowed(p.Role, authz.ActionStatisticsView) {
		return nil, domain.ErrEmployeeAccessDenied
	}
	rows, err := uc.repo.Expired(ctx, date)
	if err != nil {
		return nil, err
	}
	return dto.ToExpiredStats(rows), nil
}
