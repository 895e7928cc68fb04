// Package quotation orquesta el ciclo de vida de una cotización: verificación de cartera,
// vista previa, alta, modificación, anulación y PDF. El cálculo lo hace pricing.Calculator.
package quotation

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/sigec-api/internal/application/dto"
	"github.com/jhoicas/sigec-api/internal/application/ports"
	"github.com/jhoicas/sigec-api/internal/application/usecase"
	"github.com/jhoicas/sigec-api/internal/domain"
	"github.com/jhoicas/sigec-api/internal/domain/entity"
	"github.com/jhoicas/sigec-api/internal/domain/pricing"
	"github.com/jhoicas/sigec-api/internal/domain/repository"
	"github.com/jhoicas/sigec-api/pkg/logger"
)

var dniPattern = regexp.MustCompile(`^\d{7,9}$`)

// Actor empleado autenticado que ejecuta la operación.
type Actor struct {
	Legajo int64
	Role   string
}

// canView el dueño, supervisores y administradores pueden ver cualquier cotización.
func (a Actor) canView(q *entity.Quotation) bool {
	return q.AdvisorLegajo == a.Legajo || a.Role == entity.RoleSupervisor || a.Role == entity.RoleAdmin
}

// EventPayload cuerpo de los eventos de cotización.
type EventPayload struct {
	QuotationID   int64  `json:"cotizacion_id"`
	Number        string `json:"numero"`
	AdvisorLegajo int64  `json:"asesor_legajo"`
	ClientID      int64  `json:"cliente_id"`
	PlanID        int64  `json:"plan_id"`
	IncomeType    string `json:"tipo_ingreso"`
	Total         string `json:"valor_total"`
}

// Service casos de uso de cotizaciones.
type Service struct {
	calc       *pricing.Calculator
	plans      repository.PlanRepository
	clients    repository.ClientRepository
	quotations repository.QuotationRepository
	tx         TxRunner
	events     ports.EventPublisher
	pdf        PDFGenerator
	log        *logger.Logger
	now        func() time.Time
}

// Deps dependencias del servicio.
type Deps struct {
	Calculator *pricing.Calculator
	Plans      repository.PlanRepository
	Clients    repository.ClientRepository
	Quotations repository.QuotationRepository
	Tx         TxRunner
	Events     ports.EventPublisher
	PDF        PDFGenerator
	Logger     *logger.Logger
}

// NewService construye el servicio.
func NewService(d Deps) *Service {
	return &Service{
		calc:       d.Calculator,
		plans:      d.Plans,
		clients:    d.Clients,
		quotations: d.Quotations,
		tx:         d.Tx,
		events:     d.Events,
		pdf:        d.PDF,
		log:        d.Logger.Component("quotation"),
		now:        time.Now,
	}
}

// Preview calcula sin persistir. El plan tiene que existir y estar activo, igual que al crear.
func (s *Service) Preview(ctx context.Context, req dto.QuotationRequest) (*dto.PreviewResponse, error) {
	if _, err := s.activePlan(ctx, req.Quotation.PlanID); err != nil {
		return nil, err
	}
	in, members, err := ToEngineInput(req)
	if err != nil {
		return nil, err
	}
	calc, err := s.calc.Calculate(ctx, in, members)
	if err != nil {
		return nil, err
	}
	return toPreviewResponse(calc), nil
}

// VerifyDNI informa si el DNI ya es cliente y quién lo cotizó por última vez.
// Devuelve *PortfolioConflictError si la última cotización activa es de otro asesor.
func (s *Service) VerifyDNI(ctx context.Context, actor Actor, dni string) (*dto.VerifyDNIResponse, error) {
	dni = strings.TrimSpace(dni)
	if !dniPattern.MatchString(dni) {
		return nil, fmt.Errorf("%w: DNI debe ser numérico de 7 a 9 dígitos", domain.ErrInvalidInput)
	}
	client, err := s.clients.GetByDNI(ctx, dni)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return &dto.VerifyDNIResponse{Exists: false}, nil
	}
	last, err := s.quotations.LastActiveByDNI(ctx, dni)
	if err != nil {
		return nil, err
	}
	if last != nil && last.AdvisorLegajo != actor.Legajo {
		return nil, &PortfolioConflictError{Ref: last}
	}
	return &dto.VerifyDNIResponse{
		Exists:        true,
		QuotedByMe:    true,
		Client:        usecase.ToClientResponse(client),
		LastQuotation: ToRefResponse(last),
	}, nil
}

// Create da de alta una cotización. El cliente se busca por DNI y se crea si no existe,
// todo en la misma transacción que la cotización y sus miembros.
func (s *Service) Create(ctx context.Context, actor Actor, req dto.QuotationRequest) (*dto.QuotationResponse, error) {
	if err := validateClientData(req.Client); err != nil {
		return nil, err
	}
	dni := strings.TrimSpace(req.Client.DNI)

	plan, err := s.activePlan(ctx, req.Quotation.PlanID)
	if err != nil {
		return nil, err
	}

	if err := s.checkPortfolio(ctx, s.quotations, actor, dni); err != nil {
		return nil, err
	}

	in, members, err := ToEngineInput(req)
	if err != nil {
		return nil, err
	}
	calc, err := s.calc.Calculate(ctx, in, members)
	if err != nil {
		return nil, err
	}

	now := s.now()
	q := &entity.Quotation{
		AdvisorLegajo: actor.Legajo,
		PlanID:        plan.ID,
		Input:         calc.Input,
		Result:        calc.Result,
		Status:        entity.QuotationStatusQuoted,
		Active:        true,
		Members:       toEntityMembers(calc.Members),
		CreatedAt:     now,
		UpdatedAt:     now,
		ClientDNI:     dni,
		PlanName:      plan.Name,
	}

	err = s.tx.RunQuotation(ctx, func(clients repository.ClientRepository, quotations repository.QuotationRepository) error {
		// Dos asesores que cotizan el mismo DNI a la vez se serializan acá; el segundo
		// ve la cotización del primero.
		if err := clients.LockDNI(ctx, dni); err != nil {
			return err
		}
		if err := s.checkPortfolio(ctx, quotations, actor, dni); err != nil {
			return err
		}
		client, err := clients.GetByDNI(ctx, dni)
		if err != nil {
			return err
		}
		if client == nil {
			client = &entity.Client{
				DNI:           dni,
				FirstNames:    strings.TrimSpace(req.Client.FirstNames),
				LastNames:     strings.TrimSpace(req.Client.LastNames),
				Email:         strings.TrimSpace(req.Client.Email),
				Phone:         strings.TrimSpace(req.Client.Phone),
				AdvisorLegajo: actor.Legajo,
				Active:        true,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if err := clients.Create(ctx, client); err != nil {
				return err
			}
		}
		q.ClientID = client.ID
		q.ClientName = client.FullName()
		return quotations.Create(ctx, q)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("cotizacion_id", q.ID).
		Int64("asesor", actor.Legajo).
		Str("tipo_ingreso", string(q.Input.IncomeType)).
		Str("total", q.Result.Total.StringFixed(2)).
		Msg("cotización creada")
	s.publish(ctx, ports.EventQuotationCreated, q)
	return ToQuotationResponse(q), nil
}

// Get obtiene una cotización activa visible para el actor.
func (s *Service) Get(ctx context.Context, actor Actor, id int64) (*dto.QuotationResponse, error) {
	q, err := s.visible(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return ToQuotationResponse(q), nil
}

// List cotizaciones activas del asesor, más recientes primero.
func (s *Service) List(ctx context.Context, actor Actor) ([]dto.QuotationSummaryResponse, error) {
	list, err := s.quotations.ListByAdvisor(ctx, actor.Legajo)
	if err != nil {
		return nil, err
	}
	out := make([]dto.QuotationSummaryResponse, 0, len(list))
	for _, item := range list {
		out = append(out, toSummaryResponse(item))
	}
	return out, nil
}

// Update recalcula la cotización con los datos nuevos y reemplaza sus miembros. Solo el asesor dueño.
// El cliente no cambia.
func (s *Service) Update(ctx context.Context, actor Actor, id int64, req dto.QuotationRequest) (*dto.QuotationResponse, error) {
	q, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	plan, err := s.activePlan(ctx, req.Quotation.PlanID)
	if err != nil {
		return nil, err
	}
	in, members, err := ToEngineInput(req)
	if err != nil {
		return nil, err
	}
	calc, err := s.calc.Calculate(ctx, in, members)
	if err != nil {
		return nil, err
	}

	q.PlanID = plan.ID
	q.PlanName = plan.Name
	q.Input = calc.Input
	q.Result = calc.Result
	q.Members = toEntityMembers(calc.Members)
	q.UpdatedAt = s.now()

	err = s.tx.RunQuotation(ctx, func(_ repository.ClientRepository, quotations repository.QuotationRepository) error {
		return quotations.Update(ctx, q)
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, ports.EventQuotationUpdated, q)
	return ToQuotationResponse(q), nil
}

// Annul baja lógica. Solo el asesor dueño.
func (s *Service) Annul(ctx context.Context, actor Actor, id int64) error {
	q, err := s.owned(ctx, actor, id)
	if err != nil {
		return err
	}
	if err := s.quotations.Annul(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, ports.EventQuotationAnnulled, q)
	return nil
}

// checkPortfolio falla con *PortfolioConflictError si la última cotización activa del DNI es de otro asesor.
func (s *Service) checkPortfolio(ctx context.Context, quotations repository.QuotationRepository, actor Actor, dni string) error {
	last, err := quotations.LastActiveByDNI(ctx, dni)
	if err != nil {
		return err
	}
	if last != nil && last.AdvisorLegajo != actor.Legajo {
		return &PortfolioConflictError{Ref: last}
	}
	return nil
}

func (s *Service) activePlan(ctx context.Context, planID int64) (*entity.Plan, error) {
	if planID <= 0 {
		return nil, &pricing.ValidationError{Field: "cotizacionData.plan_id", Reason: "debe ser un entero positivo"}
	}
	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil || !plan.Active {
		return nil, &pricing.ValidationError{Field: "cotizacionData.plan_id", Reason: "el plan no existe o no está activo"}
	}
	return plan, nil
}

func (s *Service) visible(ctx context.Context, actor Actor, id int64) (*entity.Quotation, error) {
	q, err := s.quotations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.canView(q) {
		return nil, domain.ErrForbidden
	}
	return q, nil
}

func (s *Service) owned(ctx context.Context, actor Actor, id int64) (*entity.Quotation, error) {
	q, err := s.quotations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	if q.AdvisorLegajo != actor.Legajo {
		return nil, domain.ErrForbidden
	}
	return q, nil
}

// publish se ejecuta después del commit; un error del bus se registra y no falla la operación.
func (s *Service) publish(ctx context.Context, eventType string, q *entity.Quotation) {
	evt := ports.DomainEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		Key:        fmt.Sprintf("%d", q.ID),
		OccurredAt: s.now().UTC(),
		Payload: EventPayload{
			QuotationID:   q.ID,
			Number:        q.Number(),
			AdvisorLegajo: q.AdvisorLegajo,
			ClientID:      q.ClientID,
			PlanID:        q.PlanID,
			IncomeType:    string(q.Input.IncomeType),
			Total:         q.Result.Total.StringFixed(2),
		},
	}
	if err := s.events.Publish(ctx, evt); err != nil {
		s.log.Error().Err(err).Str("evento", eventType).Int64("cotizacion_id", q.ID).Msg("no se pudo publicar el evento")
	}
}

func validateClientData(c *dto.ClientData) error {
	if c == nil {
		return &pricing.ValidationError{Field: "clienteData", Reason: "es requerido"}
	}
	if !dniPattern.MatchString(strings.TrimSpace(c.DNI)) {
		return &pricing.ValidationError{Field: "clienteData.dni", Reason: "debe ser numérico de 7 a 9 dígitos"}
	}
	if strings.TrimSpace(c.FirstNames) == "" {
		return &pricing.ValidationError{Field: "clienteData.nombres", Reason: "es requerido"}
	}
	if strings.TrimSpace(c.LastNames) == "" {
		return &pricing.ValidationError{Field: "clienteData.apellidos", Reason: "es requerido"}
	}
	return nil
}
