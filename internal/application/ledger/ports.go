package ledger

import (
	"context"

	"github.com/invorya/warehouse-api/internal/domain/repository"
)

// Repos repositorios ligados a una misma transacción de base de datos.
type Repos struct {
	Transactions repository.TransactionRepository
	Items        repository.TransactionItemRepository
	Products     repository.ProductRepository
}

// TxRunner ejecuta fn dentro de una transacción de base de datos: si fn
// devuelve error se hace rollback, si no, commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(Repos) error) error
}
