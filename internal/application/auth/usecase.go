package auth

import (
	"context"

	"github.com/invorya/warehouse-api/internal/application/dto"
	"github.com/invorya/warehouse-api/internal/domain"
	"github.com/invorya/warehouse-api/internal/domain/entity"
	"github.com/invorya/warehouse-api/internal/domain/repository"
	"github.com/invorya/warehouse-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// UseCase autenticación por número de empleado y contraseña.
type UseCase struct {
	employeeRepo repository.EmployeeRepository
	jwtSecret    string
	jwtIssuer    string
	jwtExpMin    int
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(employeeRepo repository.EmployeeRepository, jwtSecret, jwtIssuer string, jwtExpMin int) *UseCase {
	return &UseCase{
		employeeRepo: employeeRepo,
		jwtSecret:    jwtSecret,
		jwtIssuer:    jwtIssuer,
		jwtExpMin:    jwtExpMin,
	}
}

// Login valida credenciales y emite un token firmado. La cuenta debe existir,
// la contraseña coincidir y el estado ser ACTIVE.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	employee, err := uc.employeeRepo.GetByNumber(ctx, in.EmployeeNumber)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrWrongPassword
	}
	if employee.Status != entity.StatusActive {
		return nil, domain.ErrEmployeeNonActive
	}

	token, err := jwt.Generate(uc.jwtSecret, employee.EmployeeNumber, string(employee.Role), uc.jwtIssuer, uc.jwtExpMin)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}
