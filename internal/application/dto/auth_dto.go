package dto

// LoginRequest credenciales: número de empleado + contraseña en claro.
type LoginRequest struct {
	EmployeeNumber int64  `json:"employee_number" validate:"required"`
	Password       string `json:"password" validate:"required"`
}

// LoginResponse token firmado con número de empleado y rol.
type LoginResponse struct {
	Token string `json:"token"`
}
