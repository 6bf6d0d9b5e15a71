// seed_tags siembra los tags automáticos por defecto ("New Client", "Repeat Client") en
// todos los tenants que aún no tienen tags automáticos. Es idempotente.
//
// Uso: go run ./cmd/seed_tags
// Usa la misma configuración que la API (DATABASE_URL / DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sunstone-app/sunstone-api/internal/application/autotag"
	"github.com/sunstone-app/sunstone-api/internal/application/usecase"
	"github.com/sunstone-app/sunstone-api/internal/domain/entity"
	"github.com/sunstone-app/sunstone-api/internal/infrastructure/persistence"
	"github.com/sunstone-app/sunstone-api/pkg/config"
	"github.com/sunstone-app/sunstone-api/pkg/logger"
)

const pageSize = 200

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Service: "seed_tags"})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	repos, err := persistence.Open(ctx, cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("abrir persistencia")
		os.Exit(1)
	}
	defer repos.Close()

	evaluator := autotag.NewEvaluator(repos.Clients, repos.Tags, repos.Sales, log.Zerolog())
	tags := usecase.NewTagUseCase(repos.Tags, repos.Clients, evaluator)
	tenants := usecase.NewTenantUseCase(repos.Tenants)

	seen := 0
	err = tenants.Each(ctx, pageSize, func(t *entity.Tenant) error {
		n, err := tags.EnsureDefaults(ctx, t.ID)
		if err != nil {
			return fmt.Errorf("tenant %s: %w", t.ID, err)
		}
		seen++
		log.Debug().Str("tenant_id", t.ID).Int("auto_tags", n).Msg("tenant revisado")
		return nil
	})
	if err != nil {
		log.Error().Err(err).Int("tenants", seen).Msg("seed de tags interrumpido")
		repos.Close()
		os.Exit(1)
	}
	log.Info().Int("tenants", seen).Msg("seed de tags completado")
}
