package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"

	_ "github.com/jhoicas/sigec-api/docs"
	"github.com/jhoicas/sigec-api/internal/application/auth"
	"github.com/jhoicas/sigec-api/internal/application/ports"
	"github.com/jhoicas/sigec-api/internal/application/quotation"
	"github.com/jhoicas/sigec-api/internal/application/usecase"
	"github.com/jhoicas/sigec-api/internal/domain/pricing"
	"github.com/jhoicas/sigec-api/internal/infrastructure/events"
	"github.com/jhoicas/sigec-api/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/sigec-api/internal/infrastructure/pdf"
	"github.com/jhoicas/sigec-api/internal/infrastructure/postgres"
	"github.com/jhoicas/sigec-api/internal/infrastructure/ratelimit"
	httpRouter "github.com/jhoicas/sigec-api/internal/interfaces/http"
	"github.com/jhoicas/sigec-api/pkg/config"
	"github.com/jhoicas/sigec-api/pkg/logger"
)

// @title                       SIGEC API
// @version                     1.0
// @description                 Cotizador de planes de salud para asesores comerciales.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	if len(applied) > 0 {
		log.Info().Strs("migraciones", applied).Msg("migraciones aplicadas")
	}

	employeeRepo := postgres.NewEmployeeRepository(pool)
	planRepo := postgres.NewPlanRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	priceRepo := postgres.NewPriceListRepository(pool)
	monotributoRepo := postgres.NewMonotributoRepository(pool)
	quotationRepo := postgres.NewQuotationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Email: sin SMTP_HOST los mensajes quedan en el log.
	var mailer ports.Mailer
	if cfg.Mail.Enabled() {
		mailer = mail.NewSMTPMailer(cfg.Mail, cfg.App.Name)
	} else {
		log.Warn().Msg("SMTP_HOST vacío: los emails se registran en el log y no se envían")
		mailer = mail.NewLogMailer(log)
	}

	// Eventos de cotización: sin KAFKA_BROKERS no se publica nada.
	var publisher ports.EventPublisher = events.NopPublisher{}
	var kafkaPublisher *events.KafkaPublisher
	if cfg.Events.Enabled() {
		kafkaPublisher = events.NewKafkaPublisher(cfg.Events, log)
		publisher = kafkaPublisher
	}

	globalLimiter, loginLimiter, rdb := buildLimiters(cfg.RateLimit, log)

	authUC := auth.NewAuthUseCase(employeeRepo, mailer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.App.FrontendURL, log)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, mailer, cfg.App.FrontendURL, log)
	planUC := usecase.NewPlanUseCase(planRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	priceListUC := usecase.NewPriceListUseCase(priceRepo, monotributoRepo, txRunner, log)

	quotationSvc := quotation.NewService(quotation.Deps{
		Calculator: pricing.NewCalculator(priceRepo, monotributoRepo),
		Plans:      planRepo,
		Clients:    clientRepo,
		Quotations: quotationRepo,
		Tx:         txRunner,
		Events:     publisher,
		PDF:        infrapdf.NewMarotoPDFGenerator(),
		Logger:     log,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.AccessLog(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/api/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/api",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SIGEC API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		EmployeeUC:    employeeUC,
		PlanUC:        planUC,
		ClientUC:      clientUC,
		PriceListUC:   priceListUC,
		Quotations:    quotationSvc,
		Employees:     employeeRepo,
		JWTSecret:     cfg.JWT.Secret,
		GlobalLimiter: globalLimiter,
		LoginLimiter:  loginLimiter,
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
	if kafkaPublisher != nil {
		if err := kafkaPublisher.Close(); err != nil {
			log.Error().Err(err).Msg("cierre del publicador de eventos")
		}
	}
	if rdb != nil {
		_ = rdb.Close()
	}

	log.Info().Msg("aplicación detenida")
}

// buildLimiters arma los limitadores global y de login. Con REDIS_URL el contador es compartido
// entre instancias; si la URL es inválida se cae al limiter en memoria.
func buildLimiters(cfg config.RateLimitConfig, log *logger.Logger) (global, login fiber.Handler, rdb *redis.Client) {
	if strings.TrimSpace(cfg.RedisURL) != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Error().Err(err).Msg("REDIS_URL inválida, se usa el limiter en memoria")
		} else {
			rdb = redis.NewClient(opts)
			global = ratelimit.NewRedisLimiter(rdb, cfg.GlobalMax, cfg.GlobalWindow, "sigec:rl:api", true, log).Handler()
			// El login no se abre si Redis falla.
			login = ratelimit.NewRedisLimiter(rdb, cfg.LoginMax, cfg.LoginWindow, "sigec:rl:login", false, log).Handler()
			return global, login, rdb
		}
	}
	return ratelimit.NewMemoryHandler(cfg.GlobalMax, cfg.GlobalWindow),
		ratelimit.NewMemoryHandler(cfg.LoginMax, cfg.LoginWindow),
		nil
}
