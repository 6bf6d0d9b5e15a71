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
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sunstone-app/sunstone-api/internal/application/autotag"
	"github.com/sunstone-app/sunstone-api/internal/application/suggestion"
	"github.com/sunstone-app/sunstone-api/internal/application/usecase"
	"github.com/sunstone-app/sunstone-api/internal/infrastructure/persistence"
	httpRouter "github.com/sunstone-app/sunstone-api/internal/interfaces/http"
	"github.com/sunstone-app/sunstone-api/pkg/config"
	"github.com/sunstone-app/sunstone-api/pkg/logger"
	"github.com/sunstone-app/sunstone-api/pkg/metrics"
	"github.com/sunstone-app/sunstone-api/pkg/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	shutdownTracing, err := tracing.Setup(ctx, tracing.Config{
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.Tracing.ServiceName,
		Insecure:    true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("configurar tracing")
	}

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		log.Fatal().Err(err).Msg("registrar métricas")
	}

	repos, err := persistence.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir persistencia")
	}
	defer repos.Close()

	zl := log.Zerolog()
	evaluator := autotag.NewEvaluator(repos.Clients, repos.Tags, repos.Sales, zl)

	clientUC := usecase.NewClientUseCase(repos.Clients, repos.Tags)
	tagUC := usecase.NewTagUseCase(repos.Tags, repos.Clients, evaluator)
	saleUC := usecase.NewSaleUseCase(repos.Tx, evaluator, zl)
	waiverUC := usecase.NewWaiverUseCase(repos.Waivers, repos.Clients, evaluator, zl)
	tenantUC := usecase.NewTenantUseCase(repos.Tenants)
	clientRanker := suggestion.NewClientRanker(repos.Clients, repos.Sales)
	adminRanker := suggestion.NewAdminRanker(repos.Tenants)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Immutable:    true, // los strings de la petición sobreviven al handler (store, métricas)
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(zl), httpRouter.Metrics())

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.App.SwaggerFile != "" {
		if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.App.SwaggerFile,
				Path:     "docs",
				Title:    "Sunstone API",
			}))
		} else {
			log.Warn().Str("file", cfg.App.SwaggerFile).Msg("swagger no encontrado; /docs deshabilitado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", httpRouter.MetricsHandler(prometheus.DefaultGatherer))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:     clientUC,
		TagUC:        tagUC,
		SaleUC:       saleUC,
		WaiverUC:     waiverUC,
		TenantUC:     tenantUC,
		ClientRanker: clientRanker,
		AdminRanker:  adminRanker,
		JWTSecret:    cfg.JWT.Secret,
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
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("cerrar tracing")
	}

	log.Info().Msg("aplicación detenida")
}
