package usecase

import (
	"context"
	"time"

	"github.com/invorya/warehouse-api/internal/application/dto"
	"github.com/invorya/warehouse-api/internal/domain"
	"github.com/invorya/warehouse-api/internal/domain/authz"
	"github.com/invorya/warehouse-api/internal/domain/entity"
	"github.com/invorya/warehouse-api/internal/domain/repository"
)

// NotificationUseCase configuración de alertas de vencimiento y consulta de
// productos próximos a vencer. Se mantiene una única configuración viva: la
// primera fila no borrada.
type NotificationUseCase struct {
	settingRepo repository.NotificationSettingRepository
	statsRepo   repository.StatsRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(settingRepo repository.NotificationSettingRepository, statsRepo repository.StatsRepository) *NotificationUseCase {
	return &NotificationUseCase{settingRepo: settingRepo, statsRepo: statsRepo}
}

func (uc *NotificationUseCase) current(ctx context.Context) (*entity.NotificationSetting, error) {
	settings, err := uc.settingRepo.ListNotDeleted(ctx)
	if err != nil {
		return nil, err
	}
	if len(settings) == 0 {
		return nil, nil
	}
	return settings[0], nil
}

// Set fija la antelación en días; crea la fila si aún no existe.
func (uc *NotificationUseCase) Set(ctx context.Context, p authz.Principal, in dto.NotificationSettingRequest) (*dto.NotificationSettingResponse, error) {
	if !authz.Allowed(p.Role, authz.ActionNotificationSet) {
		return nil, domain.ErrEmployeeAccessDenied
	}
	setting, err := uc.current(ctx)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		setting = &entity.NotificationSetting{
			Base:      entity.NewBase(p.EmployeeID),
			BeforeDay: in.BeforeDay,
		}
		if err := uc.settingRepo.Create(ctx, setting); err != nil {
			return nil, err
		}
	} else {
		setting.BeforeDay = in.BeforeDay
		if err := uc.settingRepo.Update(ctx, setting); err != nil {
			return nil, err
		}
	}
	return &dto.NotificationSettingResponse{ID: setting.ID, BeforeDay: setting.BeforeDay}, nil
}

// Get devuelve la configuración vigente; sin fila, la antelación es cero.
func (uc *NotificationUseCase) Get(ctx context.Context, p authz.Principal) (*dto.NotificationSettingResponse, error) {
	if !authz.Allowed(p.Role, authz.ActionNotificationSet) {
		return nil, domain.ErrEmployeeAccessDenied
	}
	setting, err := uc.current(ctx)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return &dto.NotificationSettingResponse{BeforeDay: 0}, nil
	}
	return &dto.NotificationSettingResponse{ID: setting.ID, BeforeDay: setting.BeforeDay}, nil
}

// UpcomingExpiries lista las líneas de entrada cuyo vencimiento cae exactamente
// a hoy + antelación configurada.
func (uc *NotificationUseCase) UpcomingExpiries(ctx context.Context, p authz.Principal, now time.Time) ([]dto.ExpiredProductStat, error) {
	if !authz.Allowed(p.Role, authz.ActionNotificationSet) {
		return nil, domain.ErrEmployeeAccessDenied
	}
	setting, err := uc.current(ctx)
	if err != nil {
		return nil, err
	}
	beforeDay := 0
	if setting != nil {
		beforeDay = setting.BeforeDay
	}
	target := now.AddDate(0, 0, beforeDay)
	rows, err := uc.statsRepo.ExpiringOn(ctx, target)
	if err != nil {
		return nil, err
	}
	return dto.ToExpiredStats(rows), nil
}
