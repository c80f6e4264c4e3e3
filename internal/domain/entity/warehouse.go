package entity

// Warehouse representa un almacén donde trabajan empleados y se registran transacciones.
type Warehouse struct {
	Base
	Name   string // único
	Status string // ACTIVE, INACTIVE
}
