package entity

// Supplier representa un proveedor asociado a transacciones de entrada.
type Supplier struct {
	Base
	Name        string
	PhoneNumber string
}
