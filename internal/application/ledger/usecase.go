package ledger

import (
	"context"

	"github.com/invorya/warehouse-api/internal/application/dto"
	"github.com/invorya/warehouse-api/internal/domain"
	"github.com/invorya/warehouse-api/internal/domain/authz"
	"github.com/invorya/warehouse-api/internal/domain/entity"
	"github.com/invorya/warehouse-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// TransactionUseCase libro de movimientos de inventario. El alta de una
// transacción con sus líneas es atómica: cabecera, líneas y total derivado se
// persisten en una sola transacción de base de datos.
type TransactionUseCase struct {
	warehouseRepo   repository.WarehouseRepository
	supplierRepo    repository.SupplierRepository
	transactionRepo repository.TransactionRepository
	itemRepo        repository.TransactionItemRepository
	runner          TxRunner
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(
	warehouseRepo repository.WarehouseRepository,
	supplierRepo repository.SupplierRepository,
	transactionRepo repository.TransactionRepository,
	itemRepo repository.TransactionItemRepository,
	runner TxRunner,
) *TransactionUseCase {
	return &TransactionUseCase{
		warehouseRepo:   warehouseRepo,
		supplierRepo:    supplierRepo,
		transactionRepo: transactionRepo,
		itemRepo:        itemRepo,
		runner:          runner,
	}
}

// Create registra una transacción con sus líneas. El precio que no corresponde
// al tipo se descarta (STOCK_IN conserva price_in, STOCK_OUT conserva
// price_out) y el total es la suma de precio conservado × cantidad; una línea
// sin precio conservado aporta cero. Cualquier producto inexistente aborta la
// operación completa.
func (uc *TransactionUseCase) Create(ctx context.Context, p authz.Principal, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if !authz.TransactionAllowed(p.Role, in.Type) {
		return nil, domain.ErrTransactionAccessDenied
	}

	warehouse, err := uc.warehouseRepo.GetByID(ctx, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrWarehouseNotFound
	}

	supplierID := ""
	if in.SupplierID != "" {
		supplier, err := uc.supplierRepo.GetByID(ctx, in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrSupplierNotFound
		}
		supplierID = supplier.ID
	}

	transaction := &entity.Transaction{
		Base:        entity.NewBase(p.EmployeeID),
		Date:        in.Date,
		Type:        in.Type,
		TotalAmount: decimal.Zero,
		ParentID:    in.ParentTransactionID,
		EmployeeID:  p.EmployeeID,
		SupplierID:  supplierID,
		WarehouseID: warehouse.ID,
	}
	items := make([]*entity.TransactionItem, 0, len(in.Items))

	err = uc.runner.Run(ctx, func(r Repos) error {
		if err := r.Transactions.Create(ctx, transaction); err != nil {
			return err
		}
		total := decimal.Zero
		for _, line := range in.Items {
			product, err := r.Products.GetByID(ctx, line.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrProductNotFound
			}

			item := &entity.TransactionItem{
				Base:          entity.NewBase(p.EmployeeID),
				TransactionID: transaction.ID,
				ProductID:     product.ID,
				Quantity:      line.Quantity,
				ExpiryDate:    line.ExpiryDate,
			}
			var kept *decimal.Decimal
			switch transaction.Type {
			case entity.TransactionStockIn:
				item.PriceIn = line.PriceIn
				kept = line.PriceIn
			case entity.TransactionStockOut:
				item.PriceOut = line.PriceOut
				kept = line.PriceOut
			}
			if kept != nil {
				total = total.Add(kept.Mul(line.Quantity))
			}
			if err := r.Items.Create(ctx, item); err != nil {
				return err
			}
			items = append(items, item)
		}
		transaction.TotalAmount = total
		return r.Transactions.UpdateTotal(ctx, transaction.ID, total)
	})
	if err != nil {
		return nil, err
	}
	return dto.ToTransactionResponse(transaction, items), nil
}

// GetAll lista las transacciones de los tipos que la política permite al actor:
// ADMIN ve STOCK_IN y EMPLOYEE ve STOCK_OUT. Un rol sin acceso a ningún tipo
// (MANAGER incluido) se rechaza por completo, no con una lista vacía.
func (uc *TransactionUseCase) GetAll(ctx context.Context, p authz.Principal) ([]dto.TransactionResponse, error) {
	types := make([]string, 0, 2)
	for _, txType := range []string{entity.TransactionStockIn, entity.TransactionStockOut} {
		if authz.TransactionAllowed(p.Role, txType) {
			types = append(types, txType)
		}
	}
	if len(types) == 0 {
		return nil, domain.ErrTransactionAccessDenied
	}

	out := make([]dto.TransactionResponse, 0)
	for _, txType := range types {
		list, err := uc.transactionRepo.ListByType(ctx, txType)
		if err != nil {
			return nil, err
		}
		for _, t := range list {
			items, err := uc.itemRepo.ListByTransaction(ctx, t.ID)
			if err != nil {
				return nil, err
			}
			out = append(out, *dto.ToTransactionResponse(t, items))
		}
	}
	return out, nil
}

// GetOne consulta una transacción con sus líneas; el tipo debe estar permitido
// para el rol del actor.
func (uc *TransactionUseCase) GetOne(ctx context.Context, p authz.Principal, id string) (*dto.TransactionResponse, error) {
	transaction, err := uc.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, domain.ErrTransactionNotFound
	}
	if !authz.TransactionAllowed(p.Role, transaction.Type) {
		return nil, domain.ErrTransactionAccessDenied
	}
	items, err := uc.itemRepo.ListByTransaction(ctx, transaction.ID)
	if err != nil {
		return nil, err
	}
	return dto.ToTransactionResponse(transaction, items), nil
}
