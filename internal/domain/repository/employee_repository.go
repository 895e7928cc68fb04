package repository

import (
	"context"

	"github.com/jhoicas/sigec-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
// Los Get devuelven (nil, nil) cuando no existe la fila.
type EmployeeRepository interface {
	Create(ctx context.Context, e *entity.Employee) error
	GetByLegajo(ctx context.Context, legajo int64) (*entity.Employee, error)
	GetByEmail(ctx context.Context, email string) (*entity.Employee, error)
	GetByResetTokenHash(ctx context.Context, hash string) (*entity.Employee, error)
	Update(ctx context.Context, e *entity.Employee) error
	List(ctx context.Context, limit, offset int) ([]*entity.Employee, error)
}
