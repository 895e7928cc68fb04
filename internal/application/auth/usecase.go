package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/sigec-api/internal/application/dto"
	"github.com/jhoicas/sigec-api/internal/application/ports"
	"github.com/jhoicas/sigec-api/internal/domain"
	"github.com/jhoicas/sigec-api/internal/domain/entity"
	"github.com/jhoicas/sigec-api/internal/domain/repository"
	"github.com/jhoicas/sigec-api/pkg/jwt"
	"github.com/jhoicas/sigec-api/pkg/logger"
)

// MinPasswordLength largo mínimo de contraseña.
const MinPasswordLength = 6

// ResetTokenTTL vigencia del enlace de recuperación.
const ResetTokenTTL = time.Hour

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: alta, confirmación de email, login y recuperación de contraseña.
type AuthUseCase struct {
	employees   repository.EmployeeRepository
	mailer      ports.Mailer
	jwtCfg      JWTConfig
	frontendURL string
	log         *logger.Logger
	now         func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(employees repository.EmployeeRepository, mailer ports.Mailer, jwtCfg JWTConfig, frontendURL string, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		employees:   employees,
		mailer:      mailer,
		jwtCfg:      jwtCfg,
		frontendURL: frontendURL,
		log:         log.Component("auth"),
		now:         time.Now,
	}
}

// Register da de alta un empleado inactivo y con email sin confirmar, y le envía el enlace de activación.
// Devuelve ErrLegajoAlreadyExists / ErrEmailAlreadyExists si ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterEmployeeRequest) (*dto.EmployeeResponse, error) {
	if err := validateRegister(in); err != nil {
		return nil, err
	}
	if in.Role == "" {
		in.Role = entity.RoleAdvisor
	}
	if existing, err := uc.employees.GetByLegajo(ctx, in.Legajo); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrLegajoAlreadyExists
	}
	if in.SupervisorLegajo != nil {
		if err := uc.checkSupervisor(ctx, *in.SupervisorLegajo); err != nil {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	e := &entity.Employee{
		Legajo:           in.Legajo,
		FirstName:        strings.TrimSpace(in.FirstName),
		MiddleName:       strings.TrimSpace(in.MiddleName),
		LastName:         strings.TrimSpace(in.LastName),
		SecondLastName:   strings.TrimSpace(in.SecondLastName),
		Email:            strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:            in.Phone,
		Address:          in.Address,
		PasswordHash:     string(hash),
		Role:             in.Role,
		Status:           entity.EmployeeStatusInactive,
		SupervisorLegajo: in.SupervisorLegajo,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.employees.Create(ctx, e); err != nil {
		return nil, err
	}

	msg, err := activationMail(uc.frontendURL, e.Email, e.Legajo)
	if err == nil {
		err = uc.mailer.Send(ctx, msg)
	}
	if err != nil {
		// El alta queda hecha; el administrador puede reenviar el enlace.
		uc.log.Error().Err(err).Int64("legajo", e.Legajo).Msg("no se pudo enviar el email de activación")
	}
	return ToEmployeeResponse(e), nil
}

// ConfirmEmail marca el email como confirmado. ErrEmployeeNotFound si no existe; ErrConflict si ya estaba confirmado.
func (uc *AuthUseCase) ConfirmEmail(ctx context.Context, legajo int64) error {
	e, err := uc.employees.GetByLegajo(ctx, legajo)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrEmployeeNotFound
	}
	if e.EmailConfirmed {
		return fmt.Errorf("%w: el email ya fue confirmado", domain.ErrConflict)
	}
	e.EmailConfirmed = true
	e.UpdatedAt = uc.now()
	return uc.employees.Update(ctx, e)
}

// Login verifica legajo/contraseña y emite el JWT.
// ErrUnauthorized ante credenciales inválidas; ErrAccountInactive si la cuenta no puede ingresar.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Legajo <= 0 || in.Password == "" {
		return nil, fmt.Errorf("%w: legajo y password son requeridos", domain.ErrInvalidInput)
	}
	e, err := uc.employees.GetByLegajo(ctx, in.Legajo)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !e.CanLogin() {
		return nil, domain.ErrAccountInactive
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, e.Legajo, e.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Employee: *ToEmployeeResponse(e)}, nil
}

// ForgotPassword genera un token de recuperación y lo envía por email. Si el email no existe
// no hace nada y no lo informa.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
	}
	e, err := uc.employees.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if e == nil {
		uc.log.Info().Str("email", email).Msg("recuperación de contraseña para email inexistente")
		return nil
	}

	token := uuid.NewString()
	expires := uc.now().Add(ResetTokenTTL)
	e.ResetTokenHash = hashToken(token)
	e.ResetTokenExpiresAt = &expires
	e.UpdatedAt = uc.now()
	if err := uc.employees.Update(ctx, e); err != nil {
		return err
	}

	msg, err := resetMail(uc.frontendURL, e.Email, e.FirstName, token)
	if err != nil {
		return err
	}
	if err := uc.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("enviar email de recuperación: %w", err)
	}
	return nil
}

// ResetPassword cambia la contraseña con un token vigente y lo invalida.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, token, password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: la contraseña debe tener al menos %d caracteres", domain.ErrInvalidInput, MinPasswordLength)
	}
	if token == "" {
		return domain.ErrTokenExpired
	}
	e, err := uc.employees.GetByResetTokenHash(ctx, hashToken(token))
	if err != nil {
		return err
	}
	if e == nil || e.ResetTokenExpiresAt == nil || uc.now().After(*e.ResetTokenExpiresAt) {
		return domain.ErrTokenExpired
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	e.PasswordHash = string(hash)
	e.ResetTokenHash = ""
	e.ResetTokenExpiresAt = nil
	e.UpdatedAt = uc.now()
	return uc.employees.Update(ctx, e)
}

func (uc *AuthUseCase) checkSupervisor(ctx context.Context, legajo int64) error {
	sup, err := uc.employees.GetByLegajo(ctx, legajo)
	if err != nil {
		return err
	}
	if sup == nil || (sup.Role != entity.RoleSupervisor && sup.Role != entity.RoleAdmin) {
		return fmt.Errorf("%w: supervisor asignado inválido", domain.ErrInvalidInput)
	}
	return nil
}

func validateRegister(in dto.RegisterEmployeeRequest) error {
	switch {
	case in.Legajo <= 0:
		return fmt.Errorf("%w: legajo debe ser un entero positivo", domain.ErrInvalidInput)
	case strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "":
		return fmt.Errorf("%w: nombre y apellido son requeridos", domain.ErrInvalidInput)
	case len(in.Password) < MinPasswordLength:
		return fmt.Errorf("%w: la contraseña debe tener al menos %d caracteres", domain.ErrInvalidInput, MinPasswordLength)
	case in.Role != "" && !entity.IsValidEmployeeRole(in.Role):
		return fmt.Errorf("%w: rol inválido", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
	}
	return nil
}

// hashToken SHA-256 en hex; en la base solo se guarda el hash del token.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ToEmployeeResponse mapea la entidad a la salida pública.
func ToEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		Legajo:           e.Legajo,
		FirstName:        e.FirstName,
		MiddleName:       e.MiddleName,
		LastName:         e.LastName,
		SecondLastName:   e.SecondLastName,
		Email:            e.Email,
		Phone:            e.Phone,
		Address:          e.Address,
		Role:             e.Role,
		Status:           e.Status,
		SupervisorLegajo: e.SupervisorLegajo,
		EmailConfirmed:   e.EmailConfirmed,
		CreatedAt:        e.CreatedAt,
	}
}
