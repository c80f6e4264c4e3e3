package repository

import (
	"context"

	"github.com/invorya/warehouse-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TransactionRepository puerto de persistencia para la cabecera del libro de
// movimientos. Create asigna TransactionNumber desde la secuencia.
type TransactionRepository interface {
	SoftDeleteRepository[entity.Transaction]
	Create(ctx context.Context, t *entity.Transaction) error
	UpdateTotal(ctx context.Context, id string, total decimal.Decimal) error
	ListByType(ctx context.Context, txType string) ([]*entity.Transaction, error)
}

// TransactionItemRepository puerto de persistencia para las líneas de transacción.
type TransactionItemRepository interface {
	SoftDeleteRepository[entity.TransactionItem]
	Create(ctx context.Context, item *entity.TransactionItem) error
	ListByTransaction(ctx context.Context, transactionID string) ([]*entity.TransactionItem, error)
}
