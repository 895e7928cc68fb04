package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sigec-api/internal/application/auth"
	"github.com/jhoicas/sigec-api/internal/application/dto"
)

// AuthHandler maneja registro, activación, login y recuperación de contraseña.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar empleado
// @Description  La cuenta queda inactiva hasta que un administrador la active. Se envía el email de confirmación.
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterEmployeeRequest  true  "legajo, nombre, apellido, email, password"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/employees/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ConfirmEmail godoc
// @Summary      Confirmar email
// @Tags         employees
// @Produce      json
// @Param        legajo  path  int  true  "Legajo"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/employees/confirm-email/{legajo} [get]
func (h *AuthHandler) ConfirmEmail(c *fiber.Ctx) error {
	legajo, err := c.ParamsInt("legajo")
	if err != nil || legajo <= 0 {
		return invalidParam(c, "legajo")
	}
	if err := h.uc.ConfirmEmail(c.UserContext(), int64(legajo)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "email confirmado; un administrador debe activar la cuenta"})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "legajo, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/employees/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ForgotPassword godoc
// @Summary      Solicitar reseteo de contraseña
// @Description  Responde igual exista o no el email.
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForgotPasswordRequest  true  "email"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/employees/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.ForgotPassword(c.UserContext(), in.Email); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "si el email está registrado, se envió un enlace para restablecer la contraseña"})
}

// ResetPassword godoc
// @Summary      Restablecer contraseña
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        token  path  string                    true  "Token recibido por email"
// @Param        body   body  dto.ResetPasswordRequest  true  "password"
// @Success      200    {object}  dto.MessageResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/employees/reset-password/{token} [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.ResetPassword(c.UserContext(), c.Params("token"), in.Password); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "contraseña actualizada"})
}
