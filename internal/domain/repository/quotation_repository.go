package repository

import (
	"context"

	"github.com/jhoicas/sigec-api/internal/domain/entity"
)

// QuotationRepository define el puerto de persistencia para Quotation y sus miembros.
type QuotationRepository interface {
	// Create inserta cabecera y miembros; asigna q.ID.
	Create(ctx context.Context, q *entity.Quotation) error
	GetByID(ctx context.Context, id int64) (*entity.Quotation, error)
	ListByAdvisor(ctx context.Context, legajo int64) ([]*entity.QuotationSummary, error)
	// Update reescribe la cabecera y reemplaza los miembros.
	Update(ctx context.Context, q *entity.Quotation) error
	Annul(ctx context.Context, id int64) error
	// LastActiveByDNI última cotización activa del cliente con ese DNI, o nil.
	LastActiveByDNI(ctx context.Context, dni string) (*entity.QuotationRef, error)
}
