package entity

import "github.com/invorya/warehouse-api/internal/domain/authz"

// Employee representa un empleado del sistema. EmployeeNumber es el identificador
// de negocio (secuencia global, único); ID es la llave interna.
type Employee struct {
	Base
	Name           string
	Surname        string
	PhoneNumber    string
	PasswordHash   string // bcrypt, nunca plano después de persistir
	EmployeeNumber int64
	WarehouseID    string
	Role           authz.Role
	Status         string // ACTIVE, INACTIVE
}
