package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invorya/warehouse-api/internal/domain/entity"
	"github.com/invorya/warehouse-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)
var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const productColumns = `id, name, product_number, category_id, measure_id, created_at, created_by, deleted`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.Name, &p.ProductNumber, &p.CategoryID, &p.MeasureID, &p.CreatedAt, &p.CreatedBy, &p.Deleted); err != nil {
		return nil, err
	}
	return &p, nil
}

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	softDeleteRepo[entity.Product]
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{softDeleteRepo[entity.Product]{
		q:       q,
		table:   "products",
		columns: productColumns,
		scan:    scanProduct,
	}}
}

// Create persiste un nuevo producto; product_number lo asigna la secuencia.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, name, product_number, category_id, measure_id, created_at, created_by, deleted)
		VALUES ($1, $2, nextval('product_number_seq'), $3, $4, $5, $6, FALSE)
		RETURNING product_number`
	err := r.q.QueryRow(ctx, query,
		p.ID, p.Name, p.CategoryID, p.MeasureID, p.CreatedAt, p.CreatedBy,
	).Scan(&p.ProductNumber)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `UPDATE products SET name = $2, category_id = $3, measure_id = $4 WHERE id = $1 AND deleted = FALSE`
	if _, err := r.q.Exec(ctx, query, p.ID, p.Name, p.CategoryID, p.MeasureID); err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

const supplierColumns = `id, name, phone_number, created_at, created_by, deleted`

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	if err := row.Scan(&s.ID, &s.Name, &s.PhoneNumber, &s.CreatedAt, &s.CreatedBy, &s.Deleted); err != nil {
		return nil, err
	}
	return &s, nil
}

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	softDeleteRepo[entity.Supplier]
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{softDeleteRepo[entity.Supplier]{
		q:       q,
		table:   "suppliers",
		columns: supplierColumns,
		scan:    scanSupplier,
	}}
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, phone_number, created_at, created_by, deleted)
		VALUES ($1, $2, $3, $4, $5, FALSE)`
	if _, err := r.q.Exec(ctx, query, s.ID, s.Name, s.PhoneNumber, s.CreatedAt, s.CreatedBy); err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// Update actualiza un proveedor existente.
func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	query := `UPDATE suppliers SET name = $2, phone_number = $3 WHERE id = $1 AND deleted = FALSE`
	if _, err := r.q.Exec(ctx, query, s.ID, s.Name, s.PhoneNumber); err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}
