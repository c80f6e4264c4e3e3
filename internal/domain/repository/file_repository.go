package repository

import (
	"context"

	"github.com/invorya/warehouse-api/internal/domain/entity"
)

// FileAssetRepository puerto de persistencia para archivos subidos.
// Create asigna HashID desde la secuencia; las descargas se resuelven por HashID.
type FileAssetRepository interface {
	SoftDeleteRepository[entity.FileAsset]
	Create(ctx context.Context, f *entity.FileAsset) error
	GetByHashID(ctx context.Context, hashID int64) (*entity.FileAsset, error)
}

// ProductImageRepository puerto de persistencia para imágenes de producto.
type ProductImageRepository interface {
	SoftDeleteRepository[entity.ProductImage]
	Create(ctx context.Context, img *entity.ProductImage) error
	ListByProduct(ctx context.Context, productID string) ([]*entity.ProductImage, error)
}

// NotificationSettingRepository puerto de persistencia para la configuración de alertas.
type NotificationSettingRepository interface {
	SoftDeleteRepository[entity.NotificationSetting]
	Create(ctx context.Context, s *entity.NotificationSetting) error
	Update(ctx context.Context, s *entity.NotificationSetting) error
}
