package dto

import "time"

// RegisterEmployeeRequest alta de un empleado por un administrador.
type RegisterEmployeeRequest struct {
	Legajo           int64  `json:"legajo"`
	FirstName        string `json:"nombre"`
	MiddleName       string `json:"segundo_nombre"`
	LastName         string `json:"apellido"`
	SecondLastName   string `json:"segundo_apellido"`
	Email            string `json:"email"`
	Phone            string `json:"telefono"`
	Address          string `json:"direccion"`
	Password         string `json:"password"`
	Role             string `json:"rol"`
	SupervisorLegajo *int64 `json:"supervisor_id"`
}

// LoginRequest ingreso con legajo y contraseña.
type LoginRequest struct {
	Legajo   int64  `json:"legajo"`
	Password string `json:"password"`
}

// LoginResponse token JWT y datos del empleado.
type LoginResponse struct {
	Token    string           `json:"token"`
	Employee EmployeeResponse `json:"empleado"`
}

// ForgotPasswordRequest pedido de recuperación de contraseña.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest nueva contraseña (el token viaja en la URL).
type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// UpdateEmployeeAccessRequest cambio de rol, estado y/o supervisor por un administrador.
type UpdateEmployeeAccessRequest struct {
	Role             *string `json:"rol"`
	Status           *string `json:"estado"`
	SupervisorLegajo *int64  `json:"supervisor_id"`
}

// EmployeeResponse salida de un empleado (sin password).
type EmployeeResponse struct {
	Legajo           int64     `json:"legajo"`
	FirstName        string    `json:"nombre"`
	MiddleName       string    `json:"segundo_nombre,omitempty"`
	LastName         string    `json:"apellido"`
	SecondLastName   string    `json:"segundo_apellido,omitempty"`
	Email            string    `json:"email"`
	Phone            string    `json:"telefono,omitempty"`
	Address          string    `json:"direccion,omitempty"`
	Role             string    `json:"rol"`
	Status           string    `json:"estado"`
	SupervisorLegajo *int64    `json:"supervisor_id,omitempty"`
	EmailConfirmed   bool      `json:"email_confirmado"`
	CreatedAt        time.Time `json:"created_at"`
}
