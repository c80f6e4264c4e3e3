package dto

import (
	"time"

	"github.com/invorya/warehouse-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TransactionItemRequest línea de entrada para crear una transacción.
// El precio que no corresponde al tipo de la transacción se descarta.
type TransactionItemRequest struct {
	ProductID  string           `json:"product_id" validate:"required"`
	Quantity   decimal.Decimal  `json:"quantity" validate:"required"`
	PriceIn    *decimal.Decimal `json:"price_in"`
	PriceOut   *decimal.Decimal `json:"price_out"`
	ExpiryDate *time.Time       `json:"expiry_date"`
}

// CreateTransactionRequest alta de transacción con sus líneas.
type CreateTransactionRequest struct {
	Date                time.Time                `json:"date" validate:"required"`
	WarehouseID         string                   `json:"warehouse_id" validate:"required"`
	SupplierID          string                   `json:"supplier_id"`
	ParentTransactionID string                   `json:"parent_transaction_id"`
	Type                string                   `json:"type" validate:"required"`
	Items               []TransactionItemRequest `json:"items" validate:"required,min=1,dive"`
}

// TransactionItemResponse línea persistida de una transacción.
type TransactionItemResponse struct {
	ID         string           `json:"id"`
	ProductID  string           `json:"product_id"`
	Quantity   decimal.Decimal  `json:"quantity"`
	PriceIn    *decimal.Decimal `json:"price_in,omitempty"`
	PriceOut   *decimal.Decimal `json:"price_out,omitempty"`
	ExpiryDate *time.Time       `json:"expiry_date,omitempty"`
}

// TransactionResponse cabecera con sus líneas y el total derivado.
type TransactionResponse struct {
	ID                  string                    `json:"id"`
	Date                time.Time                 `json:"date"`
	WarehouseID         string                    `json:"warehouse_id"`
	SupplierID          string                    `json:"supplier_id,omitempty"`
	ParentTransactionID string                    `json:"parent_transaction_id,omitempty"`
	TransactionNumber   int64                     `json:"transaction_number"`
	Type                string                    `json:"type"`
	TotalAmount         decimal.Decimal           `json:"total_amount"`
	EmployeeID          string                    `json:"employee_id"`
	Items               []TransactionItemResponse `json:"items"`
}

// ToTransactionResponse arma la respuesta estable de una transacción.
func ToTransactionResponse(t *entity.Transaction, items []*entity.TransactionItem) *TransactionResponse {
	if t == nil {
		return nil
	}
	out := &TransactionResponse{
		ID:                  t.ID,
		Date:                t.Date,
		WarehouseID:         t.WarehouseID,
		SupplierID:          t.SupplierID,
		ParentTransactionID: t.ParentID,
		TransactionNumber:   t.TransactionNumber,
		Type:                t.Type,
		TotalAmount:         t.TotalAmount,
		EmployeeID:          t.EmployeeID,
		Items:               make([]TransactionItemResponse, 0, len(items)),
	}
	for _, it := range items {
		out.Items = append(out.Items, TransactionItemResponse{
			ID:         it.ID,
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			PriceIn:    it.PriceIn,
			PriceOut:   it.PriceOut,
			ExpiryDate: it.ExpiryDate,
		})
	}
	return out
}
