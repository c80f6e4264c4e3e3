package repository

import (
	"context"

	"github.com/invorya/warehouse-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para Product (DIP).
// Create asigna ProductNumber desde la secuencia de la base de datos.
type ProductRepository interface {
	SoftDeleteRepository[entity.Product]
	Create(ctx context.Context, p *entity.Product) error
	Update(ctx context.Context, p *entity.Product) error
}

// SupplierRepository puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	SoftDeleteRepository[entity.Supplier]
	Create(ctx context.Context, s *entity.Supplier) error
	Update(ctx context.Context, s *entity.Supplier) error
}
