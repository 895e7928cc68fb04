// sigecctl tareas de operación sobre la base de SIGEC: migraciones, carga de listas de precios
// desde planillas, aumentos masivos y cálculo de cotizaciones sin pasar por la API.
//
// Uso:
//
//	sigecctl migrate
//	sigecctl prices import --file precios.csv --encoding windows-1252
//	sigecctl prices increase --pct 8.5 --type Obligatorio
//	sigecctl preview --file cotizacion.json
//
// Lee la misma configuración que la API (DATABASE_URL, DB_HOST, ...).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/jhoicas/sigec-api/pkg/config"
	"github.com/jhoicas/sigec-api/pkg/logger"
)

// env dependencias compartidas por los subcomandos; se inicializan en PersistentPreRunE.
type env struct {
	cfg  *config.Config
	log  *logger.Logger
	pool *pgxpool.Pool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:           "sigecctl",
		Short:         "Herramientas de operación de SIGEC",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("cargar configuración: %w", err)
			}
			e.cfg = cfg
			e.log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: cmd.ErrOrStderr()})
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if e.pool != nil {
				e.pool.Close()
			}
		},
	}
	root.AddCommand(newMigrateCmd(e), newPricesCmd(e), newPreviewCmd(e))
	return root
}

// db abre el pool a demanda; "prices import --dry-run" no lo necesita.
func (e *env) db(ctx context.Context) (*pgxpool.Pool, error) {
	if e.pool != nil {
		return e.pool, nil
	}
	pool, err := postgresPool(ctx, e.cfg)
	if err != nil {
		return nil, err
	}
	e.pool = pool
	return pool, nil
}
