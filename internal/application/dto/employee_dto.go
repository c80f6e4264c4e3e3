package dto

import (
	"time"

	"github.com/invorya/warehouse-api/internal/domain/entity"
)

// CreateEmployeeRequest alta de empleado. El rol no se envía: lo determina la
// jerarquía del actor (MANAGER crea ADMIN, ADMIN crea EMPLOYEE).
type CreateEmployeeRequest struct {
	Name        string `json:"name" validate:"required"`
	Surname     string `json:"surname" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Password    string `json:"password" validate:"required,min=3"`
	WarehouseID string `json:"warehouse_id" validate:"required"`
}

// UpdateEmployeeRequest parche parcial: los campos nil no se modifican.
type UpdateEmployeeRequest struct {
	Name        *string `json:"name"`
	Surname     *string `json:"surname"`
	PhoneNumber *string `json:"phone_number"`
	Password    *string `json:"password"`
	WarehouseID *string `json:"warehouse_id"`
	Status      *string `json:"status"`
}

// EmployeeResponse representación pública de un empleado (sin hash de contraseña).
type EmployeeResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Surname        string    `json:"surname"`
	PhoneNumber    string    `json:"phone_number"`
	EmployeeNumber int64     `json:"employee_number"`
	WarehouseID    string    `json:"warehouse_id"`
	Role           string    `json:"role"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToEmployeeResponse convierte la entidad a su forma de respuesta.
func ToEmployeeResponse(e *entity.Employee) *EmployeeResponse {
	if e == nil {
		return nil
	}
	return &EmployeeResponse{
		ID:             e.ID,
		Name:           e.Name,
		Surname:        e.Surname,
		PhoneNumber:    e.PhoneNumber,
		EmployeeNumber: e.EmployeeNumber,
		WarehouseID:    e.WarehouseID,
		Role:           string(e.Role),
		Status:         e.Status,
		CreatedAt:      e.CreatedAt,
	}
}
