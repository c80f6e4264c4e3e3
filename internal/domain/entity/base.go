package entity

import (
	"time"

	"github.com/google/uuid"
)

// Status ciclo de vida de catálogos y empleados.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// Base campos comunes de auditoría y borrado lógico.
// Deleted nunca se consulta fuera de la capa de persistencia: los repositorios
// excluyen filas borradas en toda lectura normal.
type Base struct {
	ID        string
	CreatedAt time.Time
	CreatedBy string // ID del empleado creador; vacío en el bootstrap
	Deleted   bool
}

// NewBase genera la identidad interna de un registro nuevo.
// Los números de negocio (employee_number, product_number, etc.) los asigna
// la secuencia de la base de datos, no este constructor.
func NewBase(createdBy string) Base {
	return Base{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		CreatedBy: createdBy,
	}
}
