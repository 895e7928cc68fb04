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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `legajo, first_name, COALESCE(middle_name, ''), last_name, COALESCE(second_last_name, ''),
	email, COALESCE(phone, ''), COALESCE(address, ''), password_hash, role, status, supervisor_legajo,
	email_confirmed, reset_token_hash, reset_token_expires_at, created_at, updated_at`

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	var resetHash *string
	err := row.Scan(
		&e.Legajo, &e.FirstName, &e.MiddleName, &e.LastName, &e.SecondLastName,
		&e.Email, &e.Phone, &e.Address, &e.PasswordHash, &e.Role, &e.Status, &e.SupervisorLegajo,
		&e.EmailConfirmed, &resetHash, &e.ResetTokenExpiresAt, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.ResetTokenHash = derefString(resetHash)
	return &e, nil
}

// Create persiste un nuevo empleado. Legajo o email repetidos devuelven ErrLegajoAlreadyExists / ErrEmailAlreadyExists.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (legajo, first_name, middle_name, last_name, second_last_name, email, phone, address,
			password_hash, role, status, supervisor_legajo, email_confirmed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		e.Legajo, e.FirstName, nullString(e.MiddleName), e.LastName, nullString(e.SecondLastName),
		e.Email, nullString(e.Phone), nullString(e.Address), e.PasswordHash, e.Role, e.Status,
		e.SupervisorLegajo, e.EmailConfirmed, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			if pgConstraint(err) == "employees_pkey" {
				return domain.ErrLegajoAlreadyExists
			}
			return domain.ErrEmailAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("supervisor %v inexistente: %w", deref64(e.SupervisorLegajo), domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByLegajo obtiene un empleado por legajo.
func (r *EmployeeRepo) GetByLegajo(ctx context.Context, legajo int64) (*entity.Employee, error) {
	e, err := scanEmployee(r.q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE legajo = $1`, legajo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by legajo: %w", err)
	}
	return e, nil
}

// GetByEmail obtiene un empleado por email (sin distinguir mayúsculas).
func (r *EmployeeRepo) GetByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	e, err := scanEmployee(r.q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE lower(email) = lower($1)`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by email: %w", err)
	}
	return e, nil
}

// GetByResetTokenHash obtiene el empleado dueño de un token de recuperación (sin validar vencimiento).
func (r *EmployeeRepo) GetByResetTokenHash(ctx context.Context, hash string) (*entity.Employee, error) {
	e, err := scanEmployee(r.q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE reset_token_hash = $1`, hash))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by reset token: %w", err)
	}
	return e, nil
}

// Update reescribe los datos editables del empleado.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE employees SET first_name = $2, middle_name = $3, last_name = $4, second_last_name = $5,
			email = $6, phone = $7, address = $8, password_hash = $9, role = $10, status = $11,
			supervisor_legajo = $12, email_confirmed = $13, reset_token_hash = $14, reset_token_expires_at = $15,
			updated_at = $16
		WHERE legajo = $1`
	tag, err := r.q.Exec(ctx, query,
		e.Legajo, e.FirstName, nullString(e.MiddleName), e.LastName, nullString(e.SecondLastName),
		e.Email, nullString(e.Phone), nullString(e.Address), e.PasswordHash, e.Role, e.Status,
		e.SupervisorLegajo, e.EmailConfirmed, nullString(e.ResetTokenHash), e.ResetTokenExpiresAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

// List lista empleados por apellido con paginación.
func (r *EmployeeRepo) List(ctx context.Context, limit, offset int) ([]*entity.Employee, error) {
	rows, err := r.q.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY last_name, first_name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func deref64(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}
