// Package persistence elige la implementación de los repositorios según DB_DRIVER.
package persistence

import (
	"context"
	"fmt"

	"github.com/sunstone-app/sunstone-api/internal/application/usecase"
	"github.com/sunstone-app/sunstone-api/internal/domain/repository"
	"github.com/sunstone-app/sunstone-api/internal/infrastructure/memory"
	"github.com/sunstone-app/sunstone-api/internal/infrastructure/postgres"
	"github.com/sunstone-app/sunstone-api/pkg/config"
)

// Repositories puertos de persistencia listos para inyectar en los casos de uso.
type Repositories struct {
	Clients repository.ClientRepository
	Tags    repository.TagRepository
	Sales   repository.SaleRepository
	Waivers repository.WaiverRepository
	Tenants repository.TenantRepository
	Tx      usecase.SaleTxRunner

	close func()
}

// Close libera el pool (no-op en memoria).
func (r *Repositories) Close() {
	if r.close != nil {
		r.close()
	}
}

// Open construye los repositorios. Con postgres abre el pool y aplica las migraciones.
func Open(ctx context.Context, cfg config.DBConfig) (*Repositories, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		store := memory.NewStore()
		return &Repositories{
			Clients: store.Clients(),
			Tags:    store.Tags(),
			Sales:   store.Sales(),
			Waivers: store.Waivers(),
			Tenants: store.Tenants(),
			Tx:      store,
		}, nil
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &Repositories{
			Clients: postgres.NewClientRepository(pool),
			Tags:    postgres.NewTagRepository(pool),
			Sales:   postgres.NewSaleRepository(pool),
			Waivers: postgres.NewWaiverRepository(pool),
			Tenants: postgres.NewTenantRepository(pool),
			Tx:      postgres.NewTxRunner(pool),
			close:   pool.Close,
		}, nil
	}
	return nil, fmt.Errorf("persistence: driver %q no soportado", cfg.Driver)
}
