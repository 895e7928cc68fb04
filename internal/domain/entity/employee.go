package entity

import (
	"strings"
	"time"
)

// Roles válidos para Employee.
const (
	RoleAdmin      = "administrador"
	RoleSupervisor = "supervisor"
	RoleAdvisor    = "asesor"
)

// Estados de la cuenta.
const (
	EmployeeStatusActive   = "activo"
	EmployeeStatusInactive = "inactivo"
)

// Employee representa un empleado (asesor, supervisor o administrador). Se identifica por legajo.
type Employee struct {
	Legajo           int64
	FirstName        string
	MiddleName       string
	LastName         string
	SecondLastName   string
	Email            string
	Phone            string
	Address          string
	PasswordHash     string // bcrypt
	Role             string // administrador, supervisor, asesor
	Status           string // activo, inactivo
	SupervisorLegajo *int64
	EmailConfirmed   bool

	// Recuperación de contraseña: solo se guarda el hash SHA-256 del token.
	ResetTokenHash      string
	ResetTokenExpiresAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName nombre y apellido para mostrar.
func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// CanLogin informa si la cuenta está activa y con email confirmado.
func (e *Employee) CanLogin() bool {
	return e.Status == EmployeeStatusActive && e.EmailConfirmed
}

// IsValidEmployeeRole informa si el rol es uno de los conocidos.
func IsValidEmployeeRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSupervisor, RoleAdvisor:
		return true
	}
	return false
}

// IsValidEmployeeStatus informa si el estado es uno de los conocidos.
func IsValidEmployeeStatus(status string) bool {
	return status == EmployeeStatusActive || status == EmployeeStatusInactive
}
