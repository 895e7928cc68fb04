package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sigec-api/internal/application/dto"
	"github.com/jhoicas/sigec-api/internal/application/usecase"
)

// ClientHandler cartera de clientes del asesor.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler de clientes.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// List godoc
// @Summary      Clientes captados por el asesor
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.ClientResponse
// @Router       /api/clientes [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByAdvisor(c.UserContext(), GetLegajo(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cliente propio
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.ClientResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [get]
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return invalidParam(c, "id")
	}
	out, err := h.uc.Get(c.UserContext(), GetLegajo(c), int64(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar datos de contacto de un cliente propio
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                       true  "ID del cliente"
// @Param        body  body  dto.UpdateClientRequest  true  "Datos de contacto"
// @Success      200  {object}  dto.ClientResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [put]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return invalidParam(c, "id")
	}
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetLegajo(c), int64(id), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
