package entity

// Measure representa una unidad de medida de producto (kg, litro, unidad...).
type Measure struct {
	Base
	Name   string
	Status string // ACTIVE, INACTIVE
}
