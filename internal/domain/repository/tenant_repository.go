package repository

import (
	"context"

	"github.com/sunstone-app/sunstone-api/internal/domain/entity"
)

// TenantRepository define el puerto de lectura de tenants (back-office de plataforma).
type TenantRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Tenant, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Tenant, error)
	// ListAll devuelve todos los tenants, incluidos los suspendidos.
	ListAll(ctx context.Context) ([]*entity.Tenant, error)
}
