// Command kardex consulta el kardex de un producto desde la terminal usando la misma
// configuración y sesión que el gateway HTTP.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jhoicas/estoque-api/internal/application/kardex"
	"github.com/jhoicas/estoque-api/internal/application/session"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/internal/infrastructure/erpclient"
	"github.com/jhoicas/estoque-api/internal/infrastructure/postgres"
	"github.com/jhoicas/estoque-api/internal/infrastructure/sessionstore"
	"github.com/jhoicas/estoque-api/pkg/config"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

// app dependencias compartidas por los subcomandos; se arma en PersistentPreRunE.
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	sessions *session.Manager
	kardex   *kardex.LoadUseCase
	closers  []func()
}

func (a *app) close() {
	for _, c := range a.closers {
		c()
	}
}

func (a *app) init(ctx context.Context, verbose bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	level := "warn"
	if verbose {
		level = "debug"
	}
	a.cfg = cfg
	a.log = logger.New(logger.Config{Env: "development", Level: level, Output: os.Stderr})

	erp, err := erpclient.NewClient(cfg.ERP.BaseURL, cfg.ERP.Timeout, a.log)
	if err != nil {
		return err
	}
	var (
		movements repository.MovementQuery = erpclient.NewMovementQuery(erp)
		products  repository.ProductReader = erpclient.NewProductRepository(erp)
	)
	if cfg.App.Source == config.SourcePostgres {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		movements = postgres.NewMovementRepository(pool, a.log)
		products = postgres.NewProductRepository(pool)
	}

	store, err := sessionstore.NewFileStore(cfg.Session.File, cfg.Session.Key)
	if err != nil {
		return err
	}
	a.sessions = session.NewManager(store, erpclient.NewAuthenticator(erp), a.log)
	if err := a.sessions.Load(ctx); err != nil {
		return err
	}
	a.kardex = kardex.NewLoadUseCase(products, movements, a.log)
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var verbose bool

	cmd := &cobra.Command{
		Use:           "kardex",
		Short:         "Kardex de productos del ERP (saldo acumulado por movimiento)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.Context(), verbose)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log de depuración en stderr")

	cmd.AddCommand(
		newShowCmd(a),
		newWatchCmd(a),
		newLoginCmd(a),
		newLogoutCmd(a),
	)
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+err.Error()))
		stop()
		os.Exit(1)
	}
}
