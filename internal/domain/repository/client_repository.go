package repository

import (
	"context"

	"github.com/jhoicas/sigec-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client (solo activos).
type ClientRepository interface {
	Create(ctx context.Context, c *entity.Client) error
	GetByID(ctx context.Context, id int64) (*entity.Client, error)
	GetByDNI(ctx context.Context, dni string) (*entity.Client, error)
	ListByAdvisor(ctx context.Context, legajo int64) ([]*entity.Client, error)
	Update(ctx context.Context, c *entity.Client) error
	// LockDNI toma un lock exclusivo sobre el DNI hasta el fin de la transacción en curso.
	LockDNI(ctx context.Context, dni string) error
}
