package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/sigec-api/internal/application/auth"
	"github.com/jhoicas/sigec-api/internal/application/dto"
	"github.com/jhoicas/sigec-api/internal/application/ports"
	"github.com/jhoicas/sigec-api/internal/domain"
	"github.com/jhoicas/sigec-api/internal/domain/entity"
	"github.com/jhoicas/sigec-api/internal/domain/repository"
	"github.com/jhoicas/sigec-api/pkg/logger"
)

// EmployeeUseCase administración de empleados (listado, perfil y cambios de acceso).
type EmployeeUseCase struct {
	repo        repository.EmployeeRepository
	mailer      ports.Mailer
	frontendURL string
	log         *logger.Logger
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, mailer ports.Mailer, frontendURL string, log *logger.Logger) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, mailer: mailer, frontendURL: frontendURL, log: log.Component("employees")}
}

// List lista empleados paginados.
func (uc *EmployeeUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.EmployeeResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *auth.ToEmployeeResponse(e))
	}
	return out, nil
}

// Get obtiene un empleado por legajo.
func (uc *EmployeeUseCase) Get(ctx context.Context, legajo int64) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByLegajo(ctx, legajo)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	return auth.ToEmployeeResponse(e), nil
}

// UpdateAccess cambia rol, estado y supervisor.
//
// Reglas: solo se activa una cuenta con email confirmado; un asesor debe reportar a un
// supervisor o administrador; supervisores y administradores no tienen supervisor.
// Al pasar de inactivo a activo se envía el email de bienvenida.
func (uc *EmployeeUseCase) UpdateAccess(ctx context.Context, legajo int64, in dto.UpdateEmployeeAccessRequest) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByLegajo(ctx, legajo)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	wasInactive := e.Status == entity.EmployeeStatusInactive

	if in.Role != nil {
		if !entity.IsValidEmployeeRole(*in.Role) {
			return nil, fmt.Errorf("%w: rol inválido", domain.ErrInvalidInput)
		}
		e.Role = *in.Role
	}
	if in.Status != nil {
		if !entity.IsValidEmployeeStatus(*in.Status) {
			return nil, fmt.Errorf("%w: estado inválido", domain.ErrInvalidInput)
		}
		if *in.Status == entity.EmployeeStatusActive && !e.EmailConfirmed {
			return nil, fmt.Errorf("%w: el empleado no confirmó su email", domain.ErrInvalidInput)
		}
		e.Status = *in.Status
	}
	if in.SupervisorLegajo != nil {
		if *in.SupervisorLegajo == e.Legajo {
			return nil, fmt.Errorf("%w: un empleado no puede ser su propio supervisor", domain.ErrInvalidInput)
		}
		sup, err := uc.repo.GetByLegajo(ctx, *in.SupervisorLegajo)
		if err != nil {
			return nil, err
		}
		if sup == nil || (sup.Role != entity.RoleSupervisor && sup.Role != entity.RoleAdmin) {
			return nil, fmt.Errorf("%w: el supervisor debe tener rol supervisor o administrador", domain.ErrInvalidInput)
		}
		e.SupervisorLegajo = in.SupervisorLegajo
	}
	if e.Role != entity.RoleAdvisor {
		e.SupervisorLegajo = nil
	}

	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}

	if wasInactive && e.Status == entity.EmployeeStatusActive {
		uc.sendWelcome(ctx, e)
	}
	return auth.ToEmployeeResponse(e), nil
}

func (uc *EmployeeUseCase) sendWelcome(ctx context.Context, e *entity.Employee) {
	msg, err := auth.WelcomeMail(uc.frontendURL, e.Email, e.FirstName)
	if err == nil {
		err = uc.mailer.Send(ctx, msg)
	}
	if err != nil {
		uc.log.Error().Err(err).Int64("legajo", e.Legajo).Msg("no se pudo enviar el email de bienvenida")
	}
}
