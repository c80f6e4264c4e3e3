package repository

import (
	"context"

	"github.com/invorya/warehouse-api/internal/domain/entity"
)

// CategoryRepository puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	SoftDeleteRepository[entity.Category]
	Create(ctx context.Context, c *entity.Category) error
	Update(ctx context.Context, c *entity.Category) error
}

// MeasureRepository puerto de persistencia para Measure (DIP).
type MeasureRepository interface {
	SoftDeleteRepository[entity.Measure]
	Create(ctx context.Context, m *entity.Measure) error
	Update(ctx context.Context, m *entity.Measure) error
}
