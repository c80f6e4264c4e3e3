package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/invorya/warehouse-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas agregadas de solo lectura sobre el libro de movimientos.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// DailyIn entradas del día: cantidad y monto (quantity × price_in) por producto.
func (r *StatsRepo) DailyIn(ctx context.Context, date time.Time) ([]repository.DailyInRow, error) {
	query := `
		SELECT p.id, p.name,
		       SUM(it.quantity) AS total_quantity,
		       SUM(it.quantity * COALESCE(it.price_in, 0)) AS total_amount
		FROM transaction_items it
		JOIN transactions t ON t.id = it.transaction_id AND t.deleted = FALSE
		JOIN products p ON p.id = it.product_id AND p.deleted = FALSE
		WHERE it.deleted = FALSE
		  AND t.type = 'STOCK_IN'
		  AND t.date::date = $1::date
		GROUP BY p.id, p.name
		ORDER BY p.name`
	rows, err := r.q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("daily in stats: %w", err)
	}
	defer rows.Close()
	var list []repository.DailyInRow
	for rows.Next() {
		var row repository.DailyInRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.TotalQuantity, &row.TotalAmount); err != nil {
			return nil, fmt.Errorf("scan daily in: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// DailyTopOut salidas del día por producto, mayor cantidad primero.
func (r *StatsRepo) DailyTopOut(ctx context.Context, date time.Time) ([]repository.DailyOutRow, error) {
	query := `
		SELECT p.id, p.name, SUM(it.quantity) AS total_quantity
		FROM transaction_items it
		JOIN transactions t ON t.id = it.transaction_id AND t.deleted = FALSE
		JOIN products p ON p.id = it.product_id AND p.deleted = FALSE
		WHERE it.deleted = FALSE
		  AND t.type = 'STOCK_OUT'
		  AND t.date::date = $1::date
		GROUP BY p.id, p.name
		ORDER BY total_quantity DESC`
	rows, err := r.q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("daily out stats: %w", err)
	}
	defer rows.Close()
	var list []repository.DailyOutRow
	for rows.Next() {
		var row repository.DailyOutRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan daily out: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Expired cantidad acumulada por producto de líneas con vencimiento a la fecha
// dada o anterior, sin importar tipo ni fecha de la transacción.
func (r *StatsRepo) Expired(ctx context.Context, date time.Time) ([]repository.ExpiredRow, error) {
	return r.expiredWhere(ctx, `it.expiry_date::date <= $1::date`, date)
}

// ExpiringOn líneas cuyo vencimiento cae exactamente en la fecha dada.
func (r *StatsRepo) ExpiringOn(ctx context.Context, date time.Time) ([]repository.ExpiredRow, error) {
	return r.expiredWhere(ctx, `it.expiry_date::date = $1::date`, date)
}

func (r *StatsRepo) expiredWhere(ctx context.Context, cond string, date time.Time) ([]repository.ExpiredRow, error) {
	query := fmt.Sprintf(`
		SELECT p.id, p.name, SUM(it.quantity) AS quantity
		FROM transaction_items it
		JOIN products p ON p.id = it.product_id AND p.deleted = FALSE
		WHERE it.deleted = FALSE
		  AND it.expiry_date IS NOT NULL
		  AND %s
		GROUP BY p.id, p.name
		ORDER BY p.name`, cond)
	rows, err := r.q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("expired stats: %w", err)
	}
	defer rows.Close()
	var list []repository.ExpiredRow
	for rows.Next() {
		var row repository.ExpiredRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.Quantity); err != nil {
			return nil, fmt.Errorf("scan expired: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
