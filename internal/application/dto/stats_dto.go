package dto

import (
	"github.com/invorya/warehouse-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DailyInStat entrada diaria por producto.
type DailyInStat struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// DailyOutStat salida diaria por producto, mayor cantidad primero.
type DailyOutStat struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
}

// ExpiredProductStat cantidad vencida acumulada por producto.
type ExpiredProductStat struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
}

func ToDailyInStats(rows []repository.DailyInRow) []DailyInStat {
	out := make([]DailyInStat, 0, len(rows))
	for _, r := range rows {
		out = append(out, DailyInStat{
			ProductID:     r.ProductID,
			ProductName:   r.ProductName,
			TotalQuantity: r.TotalQuantity,
			TotalAmount:   r.TotalAmount,
		})
	}
	return out
}

func ToDailyOutStats(rows []repository.DailyOutRow) []DailyOutStat {
	out := make([]DailyOutStat, 0, len(rows))
	for _, r := range rows {
		out = append(out, DailyOutStat{
			ProductID:     r.ProductID,
			ProductName:   r.ProductName,
			TotalQuantity: r.TotalQuantity,
		})
	}
	return out
}

func ToExpiredStats(rows []repository.ExpiredRow) []ExpiredProductStat {
	out := make([]ExpiredProductStat, 0, len(rows))
	for _, r := range rows {
		out = append(out, ExpiredProductStat{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
		})
	}
	return out
}
