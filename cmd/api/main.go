package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/estoque-api/internal/application/auth"
	"github.com/jhoicas/estoque-api/internal/application/kardex"
	"github.com/jhoicas/estoque-api/internal/application/session"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/internal/infrastructure/erpclient"
	infrapdf "github.com/jhoicas/estoque-api/internal/infrastructure/pdf"
	"github.com/jhoicas/estoque-api/internal/infrastructure/postgres"
	"github.com/jhoicas/estoque-api/internal/infrastructure/sessionstore"
	httpRouter "github.com/jhoicas/estoque-api/internal/interfaces/http"
	"github.com/jhoicas/estoque-api/pkg/config"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("erp", cfg.ERP.BaseURL).
		Str("kardex_source", cfg.App.Source).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		// Los tokens dejan de valer al reiniciar; en producción JWT_SECRET es obligatorio.
		if cfg.App.Env == "production" {
			log.Fatal().Msg("JWT_SECRET requerido en producción")
		}
		cfg.JWT.Secret = uuid.NewString()
		log.Warn().Msg("JWT_SECRET vacío: usando secreto efímero")
	}

	ctx := context.Background()

	// Backend ERP: catálogo, pedidos, transacciones y sesión.
	erp, err := erpclient.NewClient(cfg.ERP.BaseURL, cfg.ERP.Timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("cliente ERP")
	}
	productRepo := erpclient.NewProductRepository(erp)
	clientRepo := erpclient.NewClientRepository(erp)
	supplierRepo := erpclient.NewSupplierRepository(erp)
	addressRepo := erpclient.NewAddressRepository(erp)
	orderRepo := erpclient.NewOrderRepository(erp)
	authenticator := erpclient.NewAuthenticator(erp)

	var (
		movements     repository.MovementQuery = erpclient.NewMovementQuery(erp)
		productReader repository.ProductReader = productRepo
	)
	// Réplica de lectura: el kardex se consulta directo en PostgreSQL.
	if cfg.App.Source == config.SourcePostgres {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		movements = postgres.NewMovementRepository(pool, log)
		productReader = postgres.NewProductRepository(pool)
	}

	store, err := sessionstore.NewFileStore(cfg.Session.File, cfg.Session.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de sesión")
	}
	sessions := session.NewManager(store, authenticator, log)
	if err := sessions.Load(ctx); err != nil {
		// Sesión ilegible: se arranca sin sesión.
		log.Warn().Err(err).Msg("no se pudo restaurar la sesión")
	}

	kardexUC := kardex.NewLoadUseCase(productReader, movements, log)
	authUC := auth.NewAuthUseCase(sessions, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.ERP.Timeout + 10*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Estoque API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		Sessions:   sessions,
		KardexUC:   kardexUC,
		KardexPDF:  infrapdf.NewMarotoPDFGenerator(),
		ProductUC:  usecase.NewProductUseCase(productRepo),
		ClientUC:   usecase.NewClientUseCase(clientRepo),
		SupplierUC: usecase.NewSupplierUseCase(supplierRepo),
		AddressUC:  usecase.NewAddressUseCase(addressRepo),
		OrderUC:    usecase.NewOrderUseCase(orderRepo, log),
		DocumentUC: usecase.NewDocumentUseCase(movements),
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
