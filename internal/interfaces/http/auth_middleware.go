package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/warehouse-api/internal/application/dto"
	"github.com/invorya/warehouse-api/internal/domain"
	"github.com/invorya/warehouse-api/internal/domain/authz"
	"github.com/invorya/warehouse-api/internal/domain/entity"
	"github.com/invorya/warehouse-api/pkg/i18n"
	"github.com/invorya/warehouse-api/pkg/jwt"
)

// Locals key del Principal autenticado en Fiber.
const LocalPrincipal = "principal"

// employeeFinder interfaz mínima para resolver la cuenta del token sin
// acoplar el middleware al repositorio completo.
type employeeFinder interface {
	GetByNumber(ctx context.Context, employeeNumber int64) (*entity.Employee, error)
}

// AuthMiddleware valida el Bearer Token JWT, resuelve la cuenta en base de
// datos y deja el Principal en c.Locals. La cuenta debe existir, estar viva y
// en estado ACTIVE; cualquier fallo corta con 401.
func AuthMiddleware(jwtSecret string, finder employeeFinder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c)
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c)
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthorized(c)
		}
		employeeNumber, _, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return unauthorized(c)
		}

		// El rol se toma de la base de datos, no del claim: revocaciones y
		// cambios de rol aplican de inmediato.
		employee, err := finder.GetByNumber(c.Context(), employeeNumber)
		if err != nil {
			return unauthorized(c)
		}
		if employee == nil || employee.Status != entity.StatusActive {
			return unauthorized(c)
		}

		c.Locals(LocalPrincipal, authz.Principal{
			EmployeeID:     employee.ID,
			EmployeeNumber: employee.EmployeeNumber,
			Role:           employee.Role,
			WarehouseID:    employee.WarehouseID,
		})
		return c.Next()
	}
}

// unauthorized respuesta 401 uniforme: no se distingue entre token ausente,
// inválido o cuenta inutilizable.
func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Code:    int(domain.CodeCurrentUserNotFound),
		Message: i18n.Message(c.Get("hl"), "error.current_user_not_found"),
	})
}

// GetPrincipal devuelve el Principal del contexto (después del middleware de auth).
func GetPrincipal(c *fiber.Ctx) authz.Principal {
	v := c.Locals(LocalPrincipal)
	if v == nil {
		return authz.Principal{}
	}
	p, _ := v.(authz.Principal)
	return p
}
