package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de inventario.
const (
	TransactionStockIn  = "STOCK_IN"  // entrada de mercancía
	TransactionStockOut = "STOCK_OUT" // salida de mercancía
)

// Transaction representa la cabecera de un movimiento de inventario.
// TransactionNumber lo asigna la secuencia de la base de datos al persistir;
// TotalAmount se deriva de las líneas según el tipo de transacción.
type Transaction struct {
	Base
	Date              time.Time // fecha calendario del movimiento
	TransactionNumber int64
	Type              string // STOCK_IN, STOCK_OUT
	TotalAmount       decimal.Decimal
	ParentID          string // transacción padre opcional
	EmployeeID        string // empleado creador
	SupplierID        string // opcional; típico en STOCK_IN
	WarehouseID       string
}

// TransactionItem representa una línea de una transacción.
// PriceIn solo se puebla en STOCK_IN y PriceOut solo en STOCK_OUT;
// el precio no aplicable del request se descarta al crear.
type TransactionItem struct {
	Base
	TransactionID string
	ProductID     string
	Quantity      decimal.Decimal
	PriceIn       *decimal.Decimal
	PriceOut      *decimal.Decimal
	ExpiryDate    *time.Time
}
