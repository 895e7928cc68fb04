package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sigec-api/internal/application/dto"
	"github.com/jhoicas/sigec-api/internal/application/usecase"
)

// EmployeeHandler perfil propio y administración de empleados.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler de empleados.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// MyProfile godoc
// @Summary      Perfil del empleado autenticado
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/employees/myprofile [get]
func (h *EmployeeHandler) MyProfile(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetLegajo(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar empleados
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "Límite (default 20, máx 100)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}   dto.EmployeeResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return invalidParam(c, "paginación")
	}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateAccess godoc
// @Summary      Cambiar rol, estado o supervisor de un empleado
// @Description  Al pasar de inactivo a activo se envía el email de bienvenida.
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        legajo  path  int                              true  "Legajo"
// @Param        body    body  dto.UpdateEmployeeAccessRequest  true  "rol, estado, supervisor_id"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{legajo} [put]
func (h *EmployeeHandler) UpdateAccess(c *fiber.Ctx) error {
	legajo, err := c.ParamsInt("legajo")
	if err != nil || legajo <= 0 {
		return invalidParam(c, "legajo")
	}
	var in dto.UpdateEmployeeAccessRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateAccess(c.UserContext(), int64(legajo), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
