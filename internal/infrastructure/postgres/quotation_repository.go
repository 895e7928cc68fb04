package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/sigec-api/internal/domain"
	"github.com/jhoicas/sigec-api/internal/domain/entity"
	"github.com/jhoicas/sigec-api/internal/domain/pricing"
	"github.com/jhoicas/sigec-api/internal/domain/repository"
)

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

// QuotationRepo persistencia de cotizaciones y miembros. Create y Update escriben varias
// tablas: usarlo dentro de TxRunner.RunQuotation.
type QuotationRepo struct {
	q Querier
}

// NewQuotationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuotationRepository(q Querier) *QuotationRepo {
	return &QuotationRepo{q: q}
}

// Create inserta la cabecera, asigna q.ID y luego los miembros.
func (r *QuotationRepo) Create(ctx context.Context, q *entity.Quotation) error {
	in, res := q.Input, q.Result
	query := `
		INSERT INTO quotations (client_id, advisor_legajo, plan_id, income_type, is_married,
			social_security_contribution, monotributo_category, monotributo_adherents,
			commercial_discount_pct, affinity_discount_pct, young_discount_pct, card_discount_pct,
			base_price, commercial_discount_amount, affinity_discount_amount, young_discount_amount, card_discount_amount,
			subtotal, gross_salary_estimate, estimated_contribution, monotributo_contribution, vat_amount, total,
			status, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
			$18, $19, $20, $21, $22, $23, $24, $25, $26, $27)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		q.ClientID, q.AdvisorLegajo, q.PlanID, string(in.IncomeType), in.IsMarried,
		in.SocialSecurityContribution, nullString(string(in.MonotributoCategory)), in.MonotributoAdherents,
		res.CommercialDiscountPct, res.AffinityDiscountPct, res.YoungDiscountPct, res.CardDiscountPct,
		res.BasePrice, res.CommercialDiscountAmount, res.AffinityDiscountAmount, res.YoungDiscountAmount, res.CardDiscountAmount,
		res.Subtotal, res.GrossSalaryEstimate, res.EstimatedContribution, res.MonotributoContribution, res.VATAmount, res.Total,
		q.Status, q.Active, q.CreatedAt, q.UpdatedAt,
	).Scan(&q.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("cliente, asesor o plan inexistente: %w", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert quotation: %w", err)
	}
	return r.insertMembers(ctx, q)
}

func (r *QuotationRepo) insertMembers(ctx context.Context, q *entity.Quotation) error {
	if len(q.Members) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for i := range q.Members {
		m := &q.Members[i]
		m.QuotationID = q.ID
		batch.Queue(`
			INSERT INTO quotation_members (quotation_id, role, age, unit_price)
			VALUES ($1, $2, $3, $4) RETURNING id`, q.ID, string(m.Role), m.Age, m.UnitPrice)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for i := range q.Members {
		if err := br.QueryRow().Scan(&q.Members[i].ID); err != nil {
			return fmt.Errorf("insert quotation member: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una cotización activa con cliente, plan, asesor y miembros.
func (r *QuotationRepo) GetByID(ctx context.Context, id int64) (*entity.Quotation, error) {
	query := `
		SELECT q.id, q.client_id, q.advisor_legajo, q.plan_id, q.income_type, q.is_married,
			q.social_security_contribution, COALESCE(q.monotributo_category, ''), q.monotributo_adherents,
			q.commercial_discount_pct, q.affinity_discount_pct, q.young_discount_pct, q.card_discount_pct,
			q.base_price, q.commercial_discount_amount, q.affinity_discount_amount, q.young_discount_amount, q.card_discount_amount,
			q.subtotal, q.gross_salary_estimate, q.estimated_contribution, q.monotributo_contribution, q.vat_amount, q.total,
			q.status, q.active, q.created_at, q.updated_at,
			c.dni, c.last_names || ', ' || c.first_names, p.name, e.first_name || ' ' || e.last_name
		FROM quotations q
		JOIN clients c ON c.id = q.client_id
		JOIN plans p ON p.id = q.plan_id
		JOIN employees e ON e.legajo = q.advisor_legajo
		WHERE q.id = $1 AND q.active`
	var q entity.Quotation
	var incomeType, category string
	in, res := &q.Input, &q.Result
	err := r.q.QueryRow(ctx, query, id).Scan(
		&q.ID, &q.ClientID, &q.AdvisorLegajo, &q.PlanID, &incomeType, &in.IsMarried,
		&in.SocialSecurityContribution, &category, &in.MonotributoAdherents,
		&res.CommercialDiscountPct, &res.AffinityDiscountPct, &res.YoungDiscountPct, &res.CardDiscountPct,
		&res.BasePrice, &res.CommercialDiscountAmount, &res.AffinityDiscountAmount, &res.YoungDiscountAmount, &res.CardDiscountAmount,
		&res.Subtotal, &res.GrossSalaryEstimate, &res.EstimatedContribution, &res.MonotributoContribution, &res.VATAmount, &res.Total,
		&q.Status, &q.Active, &q.CreatedAt, &q.UpdatedAt,
		&q.ClientDNI, &q.ClientName, &q.PlanName, &q.AdvisorName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	in.PlanID = q.PlanID
	in.IncomeType = pricing.IncomeType(incomeType)
	in.MonotributoCategory = pricing.MonotributoCategory(category)
	in.CommercialDiscountPct = res.CommercialDiscountPct
	in.AffinityDiscountPct = res.AffinityDiscountPct
	in.CardDiscountPct = res.CardDiscountPct

	members, err := r.members(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	q.Members = members
	return &q, nil
}

func (r *QuotationRepo) members(ctx context.Context, quotationID int64) ([]entity.QuotationMember, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, quotation_id, role, age, unit_price FROM quotation_members
		WHERE quotation_id = $1 ORDER BY id`, quotationID)
	if err != nil {
		return nil, fmt.Errorf("list quotation members: %w", err)
	}
	defer rows.Close()
	var list []entity.QuotationMember
	for rows.Next() {
		var m entity.QuotationMember
		var role string
		if err := rows.Scan(&m.ID, &m.QuotationID, &role, &m.Age, &m.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan quotation member: %w", err)
		}
		m.Role = pricing.Role(role)
		list = append(list, m)
	}
	return list, rows.Err()
}

// ListByAdvisor cotizaciones activas de un asesor, más recientes primero.
func (r *QuotationRepo) ListByAdvisor(ctx context.Context, legajo int64) ([]*entity.QuotationSummary, error) {
	rows, err := r.q.Query(ctx, `
		SELECT q.id, q.created_at, q.status, q.total, c.dni, c.last_names || ', ' || c.first_names, p.name,
			(SELECT COUNT(*) FROM quotation_members m WHERE m.quotation_id = q.id)
		FROM quotations q
		JOIN clients c ON c.id = q.client_id
		JOIN plans p ON p.id = q.plan_id
		WHERE q.advisor_legajo = $1 AND q.active
		ORDER BY q.created_at DESC`, legajo)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	defer rows.Close()
	var list []*entity.QuotationSummary
	for rows.Next() {
		var s entity.QuotationSummary
		if err := rows.Scan(&s.ID, &s.CreatedAt, &s.Status, &s.Total, &s.ClientDNI, &s.ClientName, &s.PlanName, &s.MembersCount); err != nil {
			return nil, fmt.Errorf("scan quotation summary: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update reescribe entrada y resultado y reemplaza los miembros.
func (r *QuotationRepo) Update(ctx context.Context, q *entity.Quotation) error {
	in, res := q.Input, q.Result
	query := `
		UPDATE quotations SET plan_id = $2, income_type = $3, is_married = $4,
			social_security_contribution = $5, monotributo_category = $6, monotributo_adherents = $7,
			commercial_discount_pct = $8, affinity_discount_pct = $9, young_discount_pct = $10, card_discount_pct = $11,
			base_price = $12, commercial_discount_amount = $13, affinity_discount_amount = $14,
			young_discount_amount = $15, card_discount_amount = $16, subtotal = $17, gross_salary_estimate = $18,
			estimated_contribution = $19, monotributo_contribution = $20, vat_amount = $21, total = $22,
			updated_at = $23
		WHERE id = $1 AND active`
	tag, err := r.q.Exec(ctx, query,
		q.ID, q.PlanID, string(in.IncomeType), in.IsMarried,
		in.SocialSecurityContribution, nullString(string(in.MonotributoCategory)), in.MonotributoAdherents,
		res.CommercialDiscountPct, res.AffinityDiscountPct, res.YoungDiscountPct, res.CardDiscountPct,
		res.BasePrice, res.CommercialDiscountAmount, res.AffinityDiscountAmount,
		res.YoungDiscountAmount, res.CardDiscountAmount, res.Subtotal, res.GrossSalaryEstimate,
		res.EstimatedContribution, res.MonotributoContribution, res.VATAmount, res.Total,
		q.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("plan inexistente: %w", domain.ErrInvalidInput)
		}
		return fmt.Errorf("update quotation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM quotation_members WHERE quotation_id = $1`, q.ID); err != nil {
		return fmt.Errorf("delete quotation members: %w", err)
	}
	return r.insertMembers(ctx, q)
}

// Annul baja lógica de la cotización.
func (r *QuotationRepo) Annul(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `UPDATE quotations SET active = FALSE, updated_at = NOW() WHERE id = $1 AND active`, id)
	if err != nil {
		return fmt.Errorf("annul quotation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// LastActiveByDNI última cotización activa del cliente con ese DNI.
func (r *QuotationRepo) LastActiveByDNI(ctx context.Context, dni string) (*entity.QuotationRef, error) {
	var ref entity.QuotationRef
	err := r.q.QueryRow(ctx, `
		SELECT q.id, q.created_at, q.status, p.name, e.legajo, e.first_name || ' ' || e.last_name
		FROM quotations q
		JOIN clients c ON c.id = q.client_id
		JOIN plans p ON p.id = q.plan_id
		JOIN employees e ON e.legajo = q.advisor_legajo
		WHERE c.dni = $1 AND q.active
		ORDER BY q.created_at DESC, q.id DESC
		LIMIT 1`, dni).Scan(&ref.ID, &ref.CreatedAt, &ref.Status, &ref.PlanName, &ref.AdvisorLegajo, &ref.AdvisorName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("last quotation by dni: %w", err)
	}
	return &ref, nil
}
