package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invorya/warehouse-api/internal/domain/entity"
	"github.com/invorya/warehouse-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)
var _ repository.MeasureRepository = (*MeasureRepo)(nil)

const categoryColumns = `id, name, status, parent_id, created_at, created_by, deleted`

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Status, &c.ParentID, &c.CreatedAt, &c.CreatedBy, &c.Deleted); err != nil {
		return nil, err
	}
	return &c, nil
}

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	softDeleteRepo[entity.Category]
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{softDeleteRepo[entity.Category]{
		q:       q,
		table:   "categories",
		columns: categoryColumns,
		scan:    scanCategory,
	}}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, status, parent_id, created_at, created_by, deleted)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE)`
	if _, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Status, c.ParentID, c.CreatedAt, c.CreatedBy); err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// Update actualiza una categoría existente.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	query := `UPDATE categories SET name = $2, status = $3, parent_id = $4 WHERE id = $1 AND deleted = FALSE`
	if _, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Status, c.ParentID); err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

const measureColumns = `id, name, status, created_at, created_by, deleted`

func scanMeasure(row pgx.Row) (*entity.Measure, error) {
	var m entity.Measure
	if err := row.Scan(&m.ID, &m.Name, &m.Status, &m.CreatedAt, &m.CreatedBy, &m.Deleted); err != nil {
		return nil, err
	}
	return &m, nil
}

// MeasureRepo implementación del puerto MeasureRepository sobre PostgreSQL.
type MeasureRepo struct {
	softDeleteRepo[entity.Measure]
}

// NewMeasureRepository construye el adaptador de persistencia para medidas.
func NewMeasureRepository(q Querier) *MeasureRepo {
	return &MeasureRepo{softDeleteRepo[entity.Measure]{
		q:       q,
		table:   "measures",
		columns: measureColumns,
		scan:    scanMeasure,
	}}
}

// Create persiste una nueva medida.
func (r *MeasureRepo) Create(ctx context.Context, m *entity.Measure) error {
	query := `
		INSERT INTO measures (id, name, status, created_at, created_by, deleted)
		VALUES ($1, $2, $3, $4, $5, FALSE)`
	if _, err := r.q.Exec(ctx, query, m.ID, m.Name, m.Status, m.CreatedAt, m.CreatedBy); err != nil {
		return fmt.Errorf("insert measure: %w", err)
	}
	return nil
}

// Update actualiza una medida existente.
func (r *MeasureRepo) Update(ctx context.Context, m *entity.Measure) error {
	query := `UPDATE measures SET name = $2, status = $3 WHERE id = $1 AND deleted = FALSE`
	if _, err := r.q.Exec(ctx, query, m.ID, m.Name, m.Status); err != nil {
		return fmt.Errorf("update measure: %w", err)
	}
	return nil
}
