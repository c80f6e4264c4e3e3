package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/warehouse-api/internal/domain/authz"
	"github.com/invorya/warehouse-api/internal/domain/entity"
	apphttp "github.com/invorya/warehouse-api/internal/interfaces/http"
	pkgjwt "github.com/invorya/warehouse-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "warehouse-api-test"
	testExpMin    = 60
)

// fakeFinder resuelve cuentas en memoria para el middleware.
type fakeFinder struct{ items map[int64]*entity.Employee }

func (f *fakeFinder) GetByNumber(_ context.Context, n int64) (*entity.Employee, error) {
	return f.items[n], nil
}

func activeAdmin(number int64) *entity.Employee {
	return &entity.Employee{
		Base:           entity.Base{ID: "emp-1"},
		Name:           "Ana",
		EmployeeNumber: number,
		Role:           authz.RoleAdmin,
		Status:         entity.StatusActive,
		WarehouseID:    "wh-1",
	}
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para validar el JWT y resolver la cuenta
//   - Un handler dummy que expone el Principal cargado en locals
func buildTestApp(finder *fakeFinder) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, finder),
		func(c *fiber.Ctx) error {
			p := apphttp.GetPrincipal(c)
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"employee_id":     p.EmployeeID,
				"employee_number": p.EmployeeNumber,
				"role":            string(p.Role),
			})
		},
	)
	return app
}

// tokenFor genera un JWT firmado para el empleado indicado.
func tokenFor(t *testing.T, number int64, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, number, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: token válido y cuenta ACTIVE → pasa y el Principal queda cargado.
func TestAuthMiddleware_TokenValidoCargaPrincipal(t *testing.T) {
	finder := &fakeFinder{items: map[int64]*entity.Employee{1001: activeAdmin(1001)}}
	app := buildTestApp(finder)

	resp := doRequest(t, app, tokenFor(t, 1001, string(authz.RoleAdmin)))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "emp-1", body["employee_id"])
	assert.Equal(t, float64(1001), body["employee_number"])
	assert.Equal(t, string(authz.RoleAdmin), body["role"])
}

// Caso 2: el rol sale de la base de datos, no del claim del token.
func TestAuthMiddleware_RolDesdeBaseDeDatos(t *testing.T) {
	emp := activeAdmin(1001)
	emp.Role = authz.RoleEmployee // el token dirá ADMIN, la DB dice EMPLOYEE
	finder := &fakeFinder{items: map[int64]*entity.Employee{1001: emp}}
	app := buildTestApp(finder)

	resp := doRequest(t, app, tokenFor(t, 1001, string(authz.RoleAdmin)))
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, string(authz.RoleEmployee), body["role"],
		"el rol efectivo debe ser el de la base de datos")
}

// Caso 3: sin header Authorization → HTTP 401.
func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(&fakeFinder{items: map[int64]*entity.Employee{}})
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 4: token inválido / malformado → HTTP 401.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(&fakeFinder{items: map[int64]*entity.Employee{}})
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: esquema distinto de Bearer → HTTP 401.
func TestAuthMiddleware_EsquemaNoBearer_Retorna401(t *testing.T) {
	app := buildTestApp(&fakeFinder{items: map[int64]*entity.Employee{}})
	resp := doRequest(t, app, "Basic dXNlcjpwYXNz")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 6: cuenta inexistente en DB aunque el token sea válido → HTTP 401.
func TestAuthMiddleware_CuentaInexistente_Retorna401(t *testing.T) {
	app := buildTestApp(&fakeFinder{items: map[int64]*entity.Employee{}})
	resp := doRequest(t, app, tokenFor(t, 9999, string(authz.RoleAdmin)))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 7: cuenta INACTIVE → HTTP 401, misma respuesta que los demás fallos.
func TestAuthMiddleware_CuentaInactiva_Retorna401(t *testing.T) {
	emp := activeAdmin(1001)
	emp.Status = entity.StatusInactive
	app := buildTestApp(&fakeFinder{items: map[int64]*entity.Employee{1001: emp}})

	resp := doRequest(t, app, tokenFor(t, 1001, string(authz.RoleAdmin)))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(101), body["code"],
		"todos los fallos de autenticación comparten el mismo código")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, 1001, string(authz.RoleManager), testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	number, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, int64(1001), number)
	assert.Equal(t, string(authz.RoleManager), role)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, 1001, string(authz.RoleAdmin), testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, 1001, string(authz.RoleAdmin), testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
