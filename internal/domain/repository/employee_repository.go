package repository

import (
	"context"

	"github.com/invorya/warehouse-api/internal/domain/authz"
	"github.com/invorya/warehouse-api/internal/domain/entity"
)

// EmployeeRepository puerto de persistencia para Employee (DIP).
// Create asigna EmployeeNumber desde la secuencia de la base de datos.
type EmployeeRepository interface {
	SoftDeleteRepository[entity.Employee]
	Create(ctx context.Context, e *entity.Employee) error
	Update(ctx context.Context, e *entity.Employee) error
	GetByNumber(ctx context.Context, employeeNumber int64) (*entity.Employee, error)
	ExistsByRole(ctx context.Context, role authz.Role) (bool, error)
}
