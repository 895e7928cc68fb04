package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sigec-api/internal/application/dto"
	"github.com/jhoicas/sigec-api/internal/application/usecase"
)

// PriceListHandler listas de precios por plan y tipo de ingreso, y tabla de aportes de monotributo.
type PriceListHandler struct {
	uc *usecase.PriceListUseCase
}

// NewPriceListHandler construye el handler de listas de precios.
func NewPriceListHandler(uc *usecase.PriceListUseCase) *PriceListHandler {
	return &PriceListHandler{uc: uc}
}

// BulkCreate godoc
// @Summary      Cargar precios
// @Description  Alta masiva; si una fila es inválida no se guarda ninguna.
// @Tags         priceLists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.BulkPriceListRequest  true  "precios"
// @Success      201  {array}   dto.PriceEntryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/priceLists [post]
func (h *PriceListHandler) BulkCreate(c *fiber.Ctx) error {
	var in dto.BulkPriceListRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.BulkCreate(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByPlan godoc
// @Summary      Precios de un plan
// @Tags         priceLists
// @Produce      json
// @Security     BearerAuth
// @Param        planId     path  int     true  "ID del plan"
// @Param        tipoLista  path  string  true  "Obligatorio | Voluntario"
// @Success      200  {array}   dto.PriceEntryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/priceLists/plan/{planId}/{tipoLista} [get]
func (h *PriceListHandler) ListByPlan(c *fiber.Ctx) error {
	planID, err := c.ParamsInt("planId")
	if err != nil || planID <= 0 {
		return invalidParam(c, "planId")
	}
	out, err := h.uc.ListByPlanAndType(c.UserContext(), int64(planID), c.Params("tipoLista"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByType godoc
// @Summary      Precios de todos los planes para un tipo de lista
// @Tags         priceLists
// @Produce      json
// @Security     BearerAuth
// @Param        tipoLista  path  string  true  "Obligatorio | Voluntario"
// @Success      200  {array}   dto.PriceEntryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/priceLists/type/{tipoLista} [get]
func (h *PriceListHandler) ListByType(c *fiber.Ctx) error {
	out, err := h.uc.ListByType(c.UserContext(), c.Params("tipoLista"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar una fila de precios
// @Tags         priceLists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                         true  "ID de la fila"
// @Param        body  body  dto.UpdatePriceEntryRequest  true  "rango_etario, precio"
// @Success      200  {object}  dto.PriceEntryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/priceLists/{id} [put]
func (h *PriceListHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return invalidParam(c, "id")
	}
	var in dto.UpdatePriceEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), int64(id), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Dar de baja una fila de precios
// @Tags         priceLists
// @Security     BearerAuth
// @Param        id   path  int  true  "ID de la fila"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/priceLists/{id} [delete]
func (h *PriceListHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return invalidParam(c, "id")
	}
	if err := h.uc.Delete(c.UserContext(), int64(id)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Increase godoc
// @Summary      Aumento masivo de precios
// @Tags         priceLists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.PriceIncreaseRequest  true  "porcentaje y tipo_ingreso opcional"
// @Success      200  {object}  dto.PriceIncreaseResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/priceLists/increase [post]
func (h *PriceListHandler) Increase(c *fiber.Ctx) error {
	var in dto.PriceIncreaseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Increase(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListMonotributo godoc
// @Summary      Aportes de monotributo por categoría
// @Tags         priceLists
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.MonotributoContributionResponse
// @Router       /api/priceLists/monotributo [get]
func (h *PriceListHandler) ListMonotributo(c *fiber.Ctx) error {
	out, err := h.uc.ListMonotributo(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpsertMonotributo godoc
// @Summary      Fijar el aporte de una categoría de monotributo
// @Tags         priceLists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.MonotributoContributionRequest  true  "categoria (A..K o Adherente), aporte"
// @Success      200  {object}  dto.MonotributoContributionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/priceLists/monotributo [put]
func (h *PriceListHandler) UpsertMonotributo(c *fiber.Ctx) error {
	var in dto.MonotributoContributionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpsertMonotributo(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
