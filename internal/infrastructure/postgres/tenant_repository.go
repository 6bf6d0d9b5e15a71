package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sunstone-app/sunstone-api/internal/domain/entity"
	"github.com/sunstone-app/sunstone-api/internal/domain/repository"
)

var _ repository.TenantRepository = (*TenantRepo)(nil)

const tenantColumns = `id, name, subscription_status, subscription_tier, trial_ends_at, is_suspended, created_at, updated_at`

// TenantRepo lectura de tenants (las altas y cambios de suscripción llegan por el proveedor de pagos).
type TenantRepo struct {
	q Querier
}

// NewTenantRepository construye el adaptador.
func NewTenantRepository(q Querier) *TenantRepo {
	return &TenantRepo{q: q}
}

// GetByID obtiene un tenant; (nil, nil) si no existe.
func (r *TenantRepo) GetByID(ctx context.Context, id string) (*entity.Tenant, error) {
	t, err := scanTenant(r.q.QueryRow(ctx, `SELECT `+tenantColumns+` FROM tenants WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return t, nil
}

// List lista tenants por fecha de alta con paginación.
func (r *TenantRepo) List(ctx context.Context, limit, offset int) ([]*entity.Tenant, error) {
	return r.list(ctx, `SELECT `+tenantColumns+` FROM tenants ORDER BY created_at, id LIMIT $1 OFFSET $2`, limit, offset)
}

// ListAll lista todos los tenants (back-office).
func (r *TenantRepo) ListAll(ctx context.Context) ([]*entity.Tenant, error) {
	return r.list(ctx, `SELECT `+tenantColumns+` FROM tenants ORDER BY created_at, id`)
}

func (r *TenantRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Tenant, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tenant: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func scanTenant(row pgx.Row) (*entity.Tenant, error) {
	var t entity.Tenant
	err := row.Scan(&t.ID, &t.Name, &t.SubscriptionStatus, &t.SubscriptionTier, &t.TrialEndsAt,
		&t.IsSuspended, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
