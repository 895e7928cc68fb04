package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/sigec-api/internal/domain"
	"github.com/jhoicas/sigec-api/internal/domain/entity"
	"github.com/jhoicas/sigec-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, dni, first_names, last_names, COALESCE(email, ''), COALESCE(phone, ''),
	COALESCE(address, ''), COALESCE(postal_code, ''), COALESCE(city, ''), COALESCE(province, ''),
	advisor_legajo, active, created_at, updated_at`

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(&c.ID, &c.DNI, &c.FirstNames, &c.LastNames, &c.Email, &c.Phone,
		&c.Address, &c.PostalCode, &c.City, &c.Province, &c.AdvisorLegajo, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo cliente y asigna su ID.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (dni, first_names, last_names, email, phone, address, postal_code, city, province,
			advisor_legajo, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.DNI, c.FirstNames, c.LastNames, nullString(c.Email), nullString(c.Phone), nullString(c.Address),
		nullString(c.PostalCode), nullString(c.City), nullString(c.Province),
		c.AdvisorLegajo, c.Active, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente activo por ID.
func (r *ClientRepo) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	c, err := scanClient(r.q.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1 AND active`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// GetByDNI obtiene un cliente activo por DNI.
func (r *ClientRepo) GetByDNI(ctx context.Context, dni string) (*entity.Client, error) {
	c, err := scanClient(r.q.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE dni = $1 AND active`, dni))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client by dni: %w", err)
	}
	return c, nil
}

// LockDNI advisory lock de transacción sobre el DNI. Fuera de una tx se libera al terminar la sentencia.
func (r *ClientRepo) LockDNI(ctx context.Context, dni string) error {
	if _, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext('sigec:dni:' || $1))`, dni); err != nil {
		return fmt.Errorf("lock dni: %w", err)
	}
	return nil
}

// ListByAdvisor lista los clientes captados por un asesor.
func (r *ClientRepo) ListByAdvisor(ctx context.Context, legajo int64) ([]*entity.Client, error) {
	rows, err := r.q.Query(ctx, `SELECT `+clientColumns+` FROM clients WHERE advisor_legajo = $1 AND active ORDER BY last_names, first_names`, legajo)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza los datos de contacto de un cliente.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	query := `
		UPDATE clients SET first_names = $2, last_names = $3, email = $4, phone = $5, address = $6,
			postal_code = $7, city = $8, province = $9, updated_at = $10
		WHERE id = $1 AND active`
	tag, err := r.q.Exec(ctx, query,
		c.ID, c.FirstNames, c.LastNames, nullString(c.Email), nullString(c.Phone), nullString(c.Address),
		nullString(c.PostalCode), nullString(c.City), nullString(c.Province), c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
