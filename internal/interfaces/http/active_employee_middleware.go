package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sigec-api/internal/application/dto"
	"github.com/jhoicas/sigec-api/internal/domain/entity"
)

// EmployeeLookup contrato mínimo para verificar la cuenta; lo cumple repository.EmployeeRepository.
type EmployeeLookup interface {
	GetByLegajo(ctx context.Context, legajo int64) (*entity.Employee, error)
}

// RequireActiveEmployee verifica en cada request que el legajo del token siga activo.
// Un token emitido antes de dar de baja la cuenta deja de servir sin esperar a que venza.
// Debe usarse DESPUÉS de AuthMiddleware.
//
//   - 401 → el empleado ya no existe.
//   - 403 → cuenta inactiva.
//   - 503 → no se pudo consultar la base.
func RequireActiveEmployee(employees EmployeeLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		e, err := employees.GetByLegajo(c.UserContext(), GetLegajo(c))
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "ACCOUNT_CHECK_FAILED",
				Message: "no se pudo verificar la cuenta, intente más tarde",
			})
		}
		if e == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "empleado inexistente"})
		}
		if !e.CanLogin() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ACCOUNT_INACTIVE", Message: "la cuenta no está activa"})
		}
		// El rol vigente manda sobre el del token.
		c.Locals(LocalRole, e.Role)
		return c.Next()
	}
}
