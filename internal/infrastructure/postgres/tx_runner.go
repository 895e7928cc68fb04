package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/sigec-api/internal/application/quotation"
	"github.com/jhoicas/sigec-api/internal/application/usecase"
	"github.com/jhoicas/sigec-api/internal/domain/repository"
)

var (
	_ quotation.TxRunner        = (*TxRunner)(nil)
	_ usecase.PriceListTxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunQuotation ejecuta fn con los repos de clientes y cotizaciones atados a una misma
// transacción; el alta del cliente y la de la cotización se confirman juntas.
func (r *TxRunner) RunQuotation(ctx context.Context, fn func(
	clients repository.ClientRepository,
	quotations repository.QuotationRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewClientRepository(tx), NewQuotationRepository(tx))
	})
}

// RunPriceList ejecuta fn con un repo de lista de precios atado a la tx (cargas masivas y aumentos).
func (r *TxRunner) RunPriceList(ctx context.Context, fn func(prices repository.PriceListRepository) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewPriceListRepository(tx))
	})
}

// inTx hace Commit si fn no devuelve error; en cualquier otro caso Rollback.
func (r *TxRunner) inTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
