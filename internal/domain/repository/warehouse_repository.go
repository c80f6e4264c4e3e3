package repository

import (
	"context"

	"github.com/invorya/warehouse-api/internal/domain/entity"
)

// WarehouseRepository puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	SoftDeleteRepository[entity.Warehouse]
	Create(ctx context.Context, w *entity.Warehouse) error
	Update(ctx context.Context, w *entity.Warehouse) error
}
