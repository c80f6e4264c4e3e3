package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/invorya/warehouse-api/internal/domain/entity"
	"github.com/invorya/warehouse-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)
var _ repository.TransactionItemRepository = (*TransactionItemRepo)(nil)

const transactionColumns = `id, date, transaction_number, type, total_amount, parent_id, employee_id, supplier_id, warehouse_id, created_at, created_by, deleted`

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	err := row.Scan(
		&t.ID, &t.Date, &t.TransactionNumber, &t.Type, &t.TotalAmount,
		&t.ParentID, &t.EmployeeID, &t.SupplierID, &t.WarehouseID,
		&t.CreatedAt, &t.CreatedBy, &t.Deleted,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// TransactionRepo implementación del puerto TransactionRepository sobre
// PostgreSQL (usable con pool o tx).
type TransactionRepo struct {
	softDeleteRepo[entity.Transaction]
}

// NewTransactionRepository construye el adaptador de persistencia para cabeceras.
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{softDeleteRepo[entity.Transaction]{
		q:       q,
		table:   "transactions",
		columns: transactionColumns,
		scan:    scanTransaction,
	}}
}

// Create persiste una cabecera; transaction_number lo asigna la secuencia.
func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, date, transaction_number, type, total_amount, parent_id, employee_id, supplier_id, warehouse_id, created_at, created_by, deleted)
		VALUES ($1, $2, nextval('transaction_number_seq'), $3, $4, $5, $6, $7, $8, $9, $10, FALSE)
		RETURNING transaction_number`
	err := r.q.QueryRow(ctx, query,
		t.ID, t.Date, t.Type, t.TotalAmount, t.ParentID,
		t.EmployeeID, t.SupplierID, t.WarehouseID, t.CreatedAt, t.CreatedBy,
	).Scan(&t.TransactionNumber)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// UpdateTotal fija el total derivado de las líneas.
func (r *TransactionRepo) UpdateTotal(ctx context.Context, id string, total decimal.Decimal) error {
	query := `UPDATE transactions SET total_amount = $2 WHERE id = $1 AND deleted = FALSE`
	if _, err := r.q.Exec(ctx, query, id, total); err != nil {
		return fmt.Errorf("update transaction total: %w", err)
	}
	return nil
}

// ListByType lista las transacciones vivas de un tipo, más reciente primero.
func (r *TransactionRepo) ListByType(ctx context.Context, txType string) ([]*entity.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE type = $1 AND deleted = FALSE ORDER BY date DESC, created_at DESC`, transactionColumns)
	rows, err := r.q.Query(ctx, query, txType)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

const transactionItemColumns = `id, transaction_id, product_id, quantity, price_in, price_out, expiry_date, created_at, created_by, deleted`

func scanTransactionItem(row pgx.Row) (*entity.TransactionItem, error) {
	var it entity.TransactionItem
	err := row.Scan(
		&it.ID, &it.TransactionID, &it.ProductID, &it.Quantity,
		&it.PriceIn, &it.PriceOut, &it.ExpiryDate,
		&it.CreatedAt, &it.CreatedBy, &it.Deleted,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// TransactionItemRepo implementación del puerto TransactionItemRepository
// sobre PostgreSQL (usable con pool o tx).
type TransactionItemRepo struct {
	softDeleteRepo[entity.TransactionItem]
}

// NewTransactionItemRepository construye el adaptador de persistencia para líneas.
func NewTransactionItemRepository(q Querier) *TransactionItemRepo {
	return &TransactionItemRepo{softDeleteRepo[entity.TransactionItem]{
		q:       q,
		table:   "transaction_items",
		columns: transactionItemColumns,
		scan:    scanTransactionItem,
	}}
}

// Create persiste una línea de transacción.
func (r *TransactionItemRepo) Create(ctx context.Context, it *entity.TransactionItem) error {
	query := `
		INSERT INTO transaction_items (id, transaction_id, product_id, quantity, price_in, price_out, expiry_date, created_at, created_by, deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, FALSE)`
	_, err := r.q.Exec(ctx, query,
		it.ID, it.TransactionID, it.ProductID, it.Quantity,
		it.PriceIn, it.PriceOut, it.ExpiryDate, it.CreatedAt, it.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert transaction item: %w", err)
	}
	return nil
}

// ListByTransaction lista las líneas vivas de una transacción por orden de creación.
func (r *TransactionItemRepo) ListByTransaction(ctx context.Context, transactionID string) ([]*entity.TransactionItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM transaction_items WHERE transaction_id = $1 AND deleted = FALSE ORDER BY created_at`, transactionItemColumns)
	rows, err := r.q.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("list transaction items: %w", err)
	}
	defer rows.Close()
	var list []*entity.TransactionItem
	for rows.Next() {
		it, err := scanTransactionItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}
