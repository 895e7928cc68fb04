package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sigec-api/internal/application/dto"
	"github.com/jhoicas/sigec-api/internal/domain"
	"github.com/jhoicas/sigec-api/internal/domain/entity"
	"github.com/jhoicas/sigec-api/internal/domain/pricing"
	"github.com/jhoicas/sigec-api/internal/domain/repository"
	"github.com/jhoicas/sigec-api/pkg/logger"
)

// PriceListTxRunner ejecuta operaciones sobre la lista de precios dentro de una transacción.
type PriceListTxRunner interface {
	RunPriceList(ctx context.Context, fn func(prices repository.PriceListRepository) error) error
}

// PriceListUseCase administración de la lista de precios y de la tabla de aportes de monotributo.
type PriceListUseCase struct {
	prices      repository.PriceListRepository
	monotributo repository.MonotributoRepository
	tx          PriceListTxRunner
	log         *logger.Logger
}

// NewPriceListUseCase construye el caso de uso.
func NewPriceListUseCase(prices repository.PriceListRepository, monotributo repository.MonotributoRepository, tx PriceListTxRunner, log *logger.Logger) *PriceListUseCase {
	return &PriceListUseCase{prices: prices, monotributo: monotributo, tx: tx, log: log.Component("price_list")}
}

// BulkCreate valida todas las filas y las inserta en una sola transacción: o entran todas o ninguna.
func (uc *PriceListUseCase) BulkCreate(ctx context.Context, in dto.BulkPriceListRequest) ([]dto.PriceEntryResponse, error) {
	if len(in.Entries) == 0 {
		return nil, fmt.Errorf("%w: la carga no tiene precios", domain.ErrInvalidInput)
	}
	now := time.Now()
	entries := make([]*entity.PriceEntry, 0, len(in.Entries))
	for i, row := range in.Entries {
		e, err := toPriceEntry(row, now)
		if err != nil {
			return nil, fmt.Errorf("precios[%d]: %w", i, err)
		}
		entries = append(entries, e)
	}

	err := uc.tx.RunPriceList(ctx, func(prices repository.PriceListRepository) error {
		return prices.CreateBatch(ctx, entries)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int("filas", len(entries)).Msg("lista de precios cargada")

	out := make([]dto.PriceEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toPriceEntryResponse(e))
	}
	return out, nil
}

// ListByPlanAndType filas activas de un plan en una lista.
func (uc *PriceListUseCase) ListByPlanAndType(ctx context.Context, planID int64, incomeType string) ([]dto.PriceEntryResponse, error) {
	t, err := parsePriceListType(incomeType)
	if err != nil {
		return nil, err
	}
	list, err := uc.prices.ListByPlanAndType(ctx, planID, t)
	if err != nil {
		return nil, err
	}
	return toPriceEntryResponses(list), nil
}

// ListByType filas activas de una lista, todos los planes.
func (uc *PriceListUseCase) ListByType(ctx context.Context, incomeType string) ([]dto.PriceEntryResponse, error) {
	t, err := parsePriceListType(incomeType)
	if err != nil {
		return nil, err
	}
	list, err := uc.prices.ListByType(ctx, t)
	if err != nil {
		return nil, err
	}
	return toPriceEntryResponses(list), nil
}

// Update cambia banda y precio de una fila.
func (uc *PriceListUseCase) Update(ctx context.Context, id int64, in dto.UpdatePriceEntryRequest) (*dto.PriceEntryResponse, error) {
	e, err := uc.prices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if in.BandKey != "" {
		band, err := pricing.ParseBandKey(in.BandKey)
		if err != nil {
			return nil, err
		}
		e.BandKey = band
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: precio no puede ser negativo", domain.ErrInvalidInput)
	}
	e.Price = in.Price.Round(2)
	e.UpdatedAt = time.Now()
	if err := uc.prices.Update(ctx, e); err != nil {
		return nil, err
	}
	out := toPriceEntryResponse(e)
	return &out, nil
}

// Delete baja lógica de una fila.
func (uc *PriceListUseCase) Delete(ctx context.Context, id int64) error {
	return uc.prices.SoftDelete(ctx, id)
}

// Increase aplica un aumento porcentual a todos los precios activos (opcionalmente de una sola lista).
func (uc *PriceListUseCase) Increase(ctx context.Context, in dto.PriceIncreaseRequest) (*dto.PriceIncreaseResponse, error) {
	if !in.Percentage.IsPositive() || in.Percentage.GreaterThan(decimal.NewFromInt(1000)) {
		return nil, fmt.Errorf("%w: porcentaje debe ser mayor a 0 y hasta 1000", domain.ErrInvalidInput)
	}
	var t pricing.IncomeType
	if in.IncomeType != "" {
		var err error
		if t, err = parsePriceListType(in.IncomeType); err != nil {
			return nil, err
		}
	}

	var updated int64
	err := uc.tx.RunPriceList(ctx, func(prices repository.PriceListRepository) error {
		n, err := prices.IncreaseAll(ctx, in.Percentage, t)
		updated = n
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("porcentaje", in.Percentage.String()).Str("lista", string(t)).Int64("actualizados", updated).Msg("aumento de precios aplicado")
	return &dto.PriceIncreaseResponse{Updated: updated}, nil
}

// UpsertMonotributo alta o modificación del aporte de una categoría (A..K o Adherente).
func (uc *PriceListUseCase) UpsertMonotributo(ctx context.Context, in dto.MonotributoContributionRequest) (*dto.MonotributoContributionResponse, error) {
	cat := strings.TrimSpace(in.Category)
	if !strings.EqualFold(cat, entity.AdherentCategory) {
		cat = strings.ToUpper(cat)
		if !pricing.MonotributoCategory(cat).Valid() {
			return nil, fmt.Errorf("%w: categoría debe ser A..K o %s", domain.ErrInvalidInput, entity.AdherentCategory)
		}
	} else {
		cat = entity.AdherentCategory
	}
	if in.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: aporte no puede ser negativo", domain.ErrInvalidInput)
	}
	c := &entity.MonotributoContribution{Category: cat, Amount: in.Amount.Round(2), UpdatedAt: time.Now()}
	if err := uc.monotributo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return &dto.MonotributoContributionResponse{Category: c.Category, Amount: c.Amount, UpdatedAt: c.UpdatedAt}, nil
}

// ListMonotributo tabla completa de aportes.
func (uc *PriceListUseCase) ListMonotributo(ctx context.Context) ([]dto.MonotributoContributionResponse, error) {
	list, err := uc.monotributo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MonotributoContributionResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.MonotributoContributionResponse{Category: c.Category, Amount: c.Amount, UpdatedAt: c.UpdatedAt})
	}
	return out, nil
}

// parsePriceListType solo Obligatorio y Voluntario tienen lista propia.
func parsePriceListType(s string) (pricing.IncomeType, error) {
	t := pricing.IncomeType(s)
	if t != pricing.IncomeMandatory && t != pricing.IncomeVoluntary {
		return "", fmt.Errorf("%w: tipo_ingreso debe ser %s o %s", domain.ErrInvalidInput, pricing.IncomeMandatory, pricing.IncomeVoluntary)
	}
	return t, nil
}

func toPriceEntry(row dto.PriceEntryRequest, now time.Time) (*entity.PriceEntry, error) {
	t, err := parsePriceListType(row.IncomeType)
	if err != nil {
		return nil, err
	}
	band, err := pricing.ParseBandKey(row.BandKey)
	if err != nil {
		return nil, err
	}
	if row.PlanID <= 0 {
		return nil, fmt.Errorf("%w: plan_id inválido", domain.ErrInvalidInput)
	}
	if row.Price.IsNegative() {
		return nil, fmt.Errorf("%w: precio no puede ser negativo", domain.ErrInvalidInput)
	}
	name := strings.TrimSpace(row.ListName)
	if name == "" {
		name = string(t)
	}
	return &entity.PriceEntry{
		ListName:   name,
		IncomeType: t,
		BandKey:    band,
		PlanID:     row.PlanID,
		Price:      row.Price.Round(2),
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

func toPriceEntryResponse(e *entity.PriceEntry) dto.PriceEntryResponse {
	return dto.PriceEntryResponse{
		ID:         e.ID,
		ListName:   e.ListName,
		IncomeType: string(e.IncomeType),
		BandKey:    string(e.BandKey),
		PlanID:     e.PlanID,
		Price:      e.Price,
		UpdatedAt:  e.UpdatedAt,
	}
}

func toPriceEntryResponses(list []*entity.PriceEntry) []dto.PriceEntryResponse {
	out := make([]dto.PriceEntryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toPriceEntryResponse(e))
	}
	return out
}
