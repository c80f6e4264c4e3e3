package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailyInRow entrada diaria agregada por producto (cantidad y monto a precio de entrada).
type DailyInRow struct {
	ProductID     string
	ProductName   string
	TotalQuantity decimal.Decimal
	TotalAmount   decimal.Decimal
}

// DailyOutRow salida diaria agregada por producto, ordenada por cantidad descendente.
type DailyOutRow struct {
	ProductID     string
	ProductName   string
	TotalQuantity decimal.Decimal
}

// ExpiredRow cantidad agregada por producto de líneas vencidas.
type ExpiredRow struct {
	ProductID   string
	ProductName string
	Quantity    decimal.Decimal
}

// StatsRepository consultas de solo lectura sobre las líneas de transacción.
// Las tres agregaciones son independientes; no requieren un snapshot común.
type StatsRepository interface {
	// DailyIn agrega cantidad y monto (quantity × price_in) de líneas STOCK_IN
	// cuya transacción tiene exactamente la fecha dada.
	DailyIn(ctx context.Context, date time.Time) ([]DailyInRow, error)
	// DailyTopOut agrega cantidad de líneas STOCK_OUT de la fecha dada,
	// ordenada por cantidad descendente.
	DailyTopOut(ctx context.Context, date time.Time) ([]DailyOutRow, error)
	// Expired agrega cantidad de líneas con fecha de vencimiento menor o igual
	// a la fecha dada, sin importar tipo ni fecha de la transacción.
	Expired(ctx context.Context, date time.Time) ([]ExpiredRow, error)
	// ExpiringOn líneas cuyo vencimiento cae exactamente en la fecha dada
	// (alertas de vencimiento con antelación configurable).
	ExpiringOn(ctx context.Context, date time.Time) ([]ExpiredRow, error)
}
