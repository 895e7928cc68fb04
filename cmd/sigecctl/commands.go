package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/sigec-api/internal/application/dto"
	"github.com/jhoicas/sigec-api/internal/application/quotation"
	"github.com/jhoicas/sigec-api/internal/application/usecase"
	"github.com/jhoicas/sigec-api/internal/domain/pricing"
	infrapdf "github.com/jhoicas/sigec-api/internal/infrastructure/pdf"
	"github.com/jhoicas/sigec-api/internal/infrastructure/postgres"
	"github.com/jhoicas/sigec-api/internal/infrastructure/pricecsv"
	"github.com/jhoicas/sigec-api/pkg/config"
)

func postgresPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	return pool, nil
}

func newMigrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones pendientes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, err := e.db(cmd.Context())
			if err != nil {
				return err
			}
			applied, err := postgres.Migrate(cmd.Context(), pool)
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "sin migraciones pendientes")
				return nil
			}
			for _, name := range applied {
				fmt.Fprintln(cmd.OutOrStdout(), "aplicada:", name)
			}
			return nil
		},
	}
}

func newPricesCmd(e *env) *cobra.Command {
	prices := &cobra.Command{
		Use:   "prices",
		Short: "Listas de precios",
	}

	var (
		file     string
		encoding string
		dryRun   bool
	)
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Carga una planilla CSV de precios (todo o nada)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()
			rows, err := pricecsv.Read(f, encoding)
			if err != nil {
				return err
			}
			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "%d filas leídas, no se guardó nada\n", len(rows))
				return nil
			}
			uc, err := e.priceListUseCase(cmd.Context())
			if err != nil {
				return err
			}
			created, err := uc.BulkCreate(cmd.Context(), dto.BulkPriceListRequest{Entries: rows})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d precios cargados\n", len(created))
			return nil
		},
	}
	importCmd.Flags().StringVarP(&file, "file", "f", "", "ruta del CSV")
	importCmd.Flags().StringVar(&encoding, "encoding", "utf-8", "utf-8 | windows-1252 | iso-8859-1")
	importCmd.Flags().BoolVar(&dryRun, "dry-run", false, "solo valida la planilla")
	_ = importCmd.MarkFlagRequired("file")

	var (
		pct        float64
		incomeType string
	)
	increaseCmd := &cobra.Command{
		Use:   "increase",
		Short: "Aumento porcentual de todos los precios activos",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := e.priceListUseCase(cmd.Context())
			if err != nil {
				return err
			}
			out, err := uc.Increase(cmd.Context(), dto.PriceIncreaseRequest{
				Percentage: decimal.NewFromFloat(pct),
				IncomeType: incomeType,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d precios actualizados\n", out.Updated)
			return nil
		},
	}
	increaseCmd.Flags().Float64Var(&pct, "pct", 0, "porcentaje de aumento (0 a 1000)")
	increaseCmd.Flags().StringVar(&incomeType, "type", "", "Obligatorio | Voluntario (vacío = ambas)")
	_ = increaseCmd.MarkFlagRequired("pct")

	prices.AddCommand(importCmd, increaseCmd)
	return prices
}

func (e *env) priceListUseCase(ctx context.Context) (*usecase.PriceListUseCase, error) {
	pool, err := e.db(ctx)
	if err != nil {
		return nil, err
	}
	return usecase.NewPriceListUseCase(
		postgres.NewPriceListRepository(pool),
		postgres.NewMonotributoRepository(pool),
		postgres.NewTxRunner(pool),
		e.log,
	), nil
}

func newPreviewCmd(e *env) *cobra.Command {
	var (
		file   string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Calcula una cotización con los precios vigentes sin guardarla",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var r io.Reader = cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			var req dto.QuotationRequest
			if err := json.NewDecoder(r).Decode(&req); err != nil {
				return fmt.Errorf("leer cotización: %w", err)
			}
			pool, err := e.db(cmd.Context())
			if err != nil {
				return err
			}
			svc := quotation.NewService(quotation.Deps{
				Calculator: pricing.NewCalculator(postgres.NewPriceListRepository(pool), postgres.NewMonotributoRepository(pool)),
				Plans:      postgres.NewPlanRepository(pool),
				Logger:     e.log,
			})
			res, err := svc.Preview(cmd.Context(), req)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			printCalculation(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON con la cotización (- = stdin)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "salida JSON")
	return cmd
}

func printCalculation(w io.Writer, p *dto.PreviewResponse) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	for _, m := range p.Members {
		fmt.Fprintf(tw, "%s (%d)\t%s\t\n", m.Role, m.Age, infrapdf.FormatMoney(m.UnitPrice))
	}
	q := p.Quotation
	fmt.Fprintf(tw, "Valor base\t%s\t\n", infrapdf.FormatMoney(q.BasePrice))
	discount := func(label string, pct, amount decimal.Decimal) {
		if pct.IsPositive() {
			fmt.Fprintf(tw, "%s %s%%\t-%s\t\n", label, pct.String(), infrapdf.FormatMoney(amount))
		}
	}
	discount("Descuento afinidad", q.AffinityDiscountPct, q.AffinityDiscountAmount)
	discount("Descuento comercial", q.CommercialDiscountPct, q.CommercialDiscountAmount)
	discount("Descuento joven", q.YoungDiscountPct, q.YoungDiscountAmount)
	discount("Descuento tarjeta", q.CardDiscountPct, q.CardDiscountAmount)
	fmt.Fprintf(tw, "Subtotal\t%s\t\n", infrapdf.FormatMoney(q.Subtotal))
	switch pricing.IncomeType(q.IncomeType) {
	case pricing.IncomeMandatory:
		fmt.Fprintf(tw, "Aportes estimados\t-%s\t\n", infrapdf.FormatMoney(q.EstimatedContribution))
	case pricing.IncomeMonotributo:
		fmt.Fprintf(tw, "Aporte monotributo\t-%s\t\n", infrapdf.FormatMoney(q.MonotributoContribution))
	case pricing.IncomeVoluntary:
		fmt.Fprintf(tw, "IVA\t%s\t\n", infrapdf.FormatMoney(q.VATAmount))
	}
	fmt.Fprintf(tw, "TOTAL MENSUAL\t%s\t\n", infrapdf.FormatMoney(q.Total))
	_ = tw.Flush()
}
