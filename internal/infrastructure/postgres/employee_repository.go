package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invorya/warehouse-api/internal/domain/authz"
	"github.com/invorya/warehouse-api/internal/domain/entity"
	"github.com/invorya/warehouse-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = `id, name, surname, phone_number, password_hash, employee_number, warehouse_id, role, status, created_at, created_by, deleted`

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(
		&e.ID, &e.Name, &e.Surname, &e.PhoneNumber, &e.PasswordHash,
		&e.EmployeeNumber, &e.WarehouseID, &e.Role, &e.Status,
		&e.CreatedAt, &e.CreatedBy, &e.Deleted,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL
// (usable con pool o tx).
type EmployeeRepo struct {
	softDeleteRepo[entity.Employee]
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{softDeleteRepo[entity.Employee]{
		q:       q,
		table:   "employees",
		columns: employeeColumns,
		scan:    scanEmployee,
	}}
}

// Create persiste un nuevo empleado; employee_number lo asigna la secuencia.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (id, name, surname, phone_number, password_hash, employee_number, warehouse_id, role, status, created_at, created_by, deleted)
		VALUES ($1, $2, $3, $4, $5, nextval('employee_number_seq'), $6, $7, $8, $9, $10, FALSE)
		RETURNING employee_number`
	err := r.q.QueryRow(ctx, query,
		e.ID, e.Name, e.Surname, e.PhoneNumber, e.PasswordHash,
		e.WarehouseID, e.Role, e.Status, e.CreatedAt, e.CreatedBy,
	).Scan(&e.EmployeeNumber)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// Update actualiza los campos editables de un empleado.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE employees
		SET name = $2, surname = $3, phone_number = $4, password_hash = $5, warehouse_id = $6, status = $7
		WHERE id = $1 AND deleted = FALSE`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Name, e.Surname, e.PhoneNumber, e.PasswordHash, e.WarehouseID, e.Status,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// GetByNumber obtiene un empleado vivo por su número de negocio.
func (r *EmployeeRepo) GetByNumber(ctx context.Context, employeeNumber int64) (*entity.Employee, error) {
	query := fmt.Sprintf(`SELECT %s FROM employees WHERE employee_number = $1 AND deleted = FALSE`, employeeColumns)
	e, err := scanEmployee(r.q.QueryRow(ctx, query, employeeNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by number: %w", err)
	}
	return e, nil
}

// ExistsByRole indica si existe algún empleado vivo con el rol dado.
func (r *EmployeeRepo) ExistsByRole(ctx context.Context, role authz.Role) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE role = $1 AND deleted = FALSE)`, role,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists employee by role: %w", err)
	}
	return exists, nil
}
