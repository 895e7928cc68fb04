package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sigec-api/internal/application/dto"
	"github.com/jhoicas/sigec-api/internal/application/quotation"
)

// QuotationHandler cotizador: cálculo, alta, consulta, modificación, anulación y PDF.
type QuotationHandler struct {
	svc *quotation.Service
}

// NewQuotationHandler construye el handler de cotizaciones.
func NewQuotationHandler(svc *quotation.Service) *QuotationHandler {
	return &QuotationHandler{svc: svc}
}

// Calculate godoc
// @Summary      Calcular cotización (vista previa)
// @Description  Ejecuta el motor sin guardar nada.
// @Tags         cotizaciones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.QuotationRequest  true  "Datos de la cotización"
// @Success      200  {object}  dto.PreviewResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/cotizaciones/calculate [post]
func (h *QuotationHandler) Calculate(c *fiber.Ctx) error {
	var in dto.QuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := validateQuotationRequest(in, false); len(errs) > 0 {
		return errs.respond(c)
	}
	out, err := h.svc.Preview(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// VerifyDNI godoc
// @Summary      Verificar cartera por DNI
// @Description  409 si la última cotización activa del DNI pertenece a otro asesor.
// @Tags         cotizaciones
// @Produce      json
// @Security     BearerAuth
// @Param        dni  path  string  true  "DNI"
// @Success      200  {object}  dto.VerifyDNIResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/cotizaciones/verify-dni/{dni} [get]
func (h *QuotationHandler) VerifyDNI(c *fiber.Ctx) error {
	out, err := h.svc.VerifyDNI(c.UserContext(), actorFrom(c), c.Params("dni"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Cotizaciones del asesor
// @Tags         cotizaciones
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.QuotationSummaryResponse
// @Router       /api/cotizaciones [get]
func (h *QuotationHandler) List(c *fiber.Ctx) error {
	out, err := h.svc.List(c.UserContext(), actorFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear cotización
// @Tags         cotizaciones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.QuotationRequest  true  "Cliente, plan, grupo familiar y descuentos"
// @Success      201  {object}  dto.QuotationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/cotizaciones [post]
func (h *QuotationHandler) Create(c *fiber.Ctx) error {
	var in dto.QuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := validateQuotationRequest(in, true); len(errs) > 0 {
		return errs.respond(c)
	}
	out, err := h.svc.Create(c.UserContext(), actorFrom(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener cotización
// @Tags         cotizaciones
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID de la cotización"
// @Success      200  {object}  dto.QuotationResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cotizaciones/{id} [get]
func (h *QuotationHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return invalidParam(c, "id")
	}
	out, err := h.svc.Get(c.UserContext(), actorFrom(c), int64(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modificar cotización
// @Description  Recalcula y reemplaza el grupo familiar. Solo el asesor dueño.
// @Tags         cotizaciones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                   true  "ID de la cotización"
// @Param        body  body  dto.QuotationRequest  true  "Plan, grupo familiar y descuentos"
// @Success      200  {object}  dto.QuotationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cotizaciones/{id} [put]
func (h *QuotationHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return invalidParam(c, "id")
	}
	var in dto.QuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := validateQuotationRequest(in, false); len(errs) > 0 {
		return errs.respond(c)
	}
	out, err := h.svc.Update(c.UserContext(), actorFrom(c), int64(id), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Annul godoc
// @Summary      Anular cotización
// @Tags         cotizaciones
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID de la cotización"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cotizaciones/anular/{id} [put]
func (h *QuotationHandler) Annul(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return invalidParam(c, "id")
	}
	if err := h.svc.Annul(c.UserContext(), actorFrom(c), int64(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cotización anulada"})
}

// PDF godoc
// @Summary      Descargar la cotización en PDF
// @Tags         cotizaciones
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  int  true  "ID de la cotización"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cotizaciones/{id}/pdf [get]
func (h *QuotationHandler) PDF(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return invalidParam(c, "id")
	}
	doc, filename, err := h.svc.DownloadPDF(c.UserContext(), actorFrom(c), int64(id))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(doc)
}
