package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invorya/warehouse-api/internal/domain/entity"
	"github.com/invorya/warehouse-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

const warehouseColumns = `id, name, status, created_at, created_by, deleted`

func scanWarehouse(row pgx.Row) (*entity.Warehouse, error) {
	var w entity.Warehouse
	if err := row.Scan(&w.ID, &w.Name, &w.Status, &w.CreatedAt, &w.CreatedBy, &w.Deleted); err != nil {
		return nil, err
	}
	return &w, nil
}

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	softDeleteRepo[entity.Warehouse]
}

// NewWarehouseRepository construye el adaptador de persistencia para almacenes.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{softDeleteRepo[entity.Warehouse]{
		q:       q,
		table:   "warehouses",
		columns: warehouseColumns,
		scan:    scanWarehouse,
	}}
}

// Create persiste un nuevo almacén.
func (r *WarehouseRepo) Create(ctx context.Context, w *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, name, status, created_at, created_by, deleted)
		VALUES ($1, $2, $3, $4, $5, FALSE)`
	if _, err := r.q.Exec(ctx, query, w.ID, w.Name, w.Status, w.CreatedAt, w.CreatedBy); err != nil {
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// Update actualiza un almacén existente.
func (r *WarehouseRepo) Update(ctx context.Context, w *entity.Warehouse) error {
	query := `UPDATE warehouses SET name = $2, status = $3 WHERE id = $1 AND deleted = FALSE`
	if _, err := r.q.Exec(ctx, query, w.ID, w.Name, w.Status); err != nil {
		return fmt.Errorf("update warehouse: %w", err)
	}
	return nil
}
