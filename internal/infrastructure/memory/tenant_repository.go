package memory

import (
	"context"

	"github.com/sunstone-app/sunstone-api/internal/domain/entity"
	"github.com/sunstone-app/sunstone-api/internal/domain/repository"
)

var _ repository.TenantRepository = (*TenantRepo)(nil)

// TenantRepo implementación en memoria de TenantRepository.
type TenantRepo struct {
	s *Store
}

func (r *TenantRepo) GetByID(_ context.Context, id string) (*entity.Tenant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.tenants[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *TenantRepo) List(ctx context.Context, limit, offset int) ([]*entity.Tenant, error) {
	all, _ := r.ListAll(ctx)
	return page(all, limit, offset), nil
}

func (r *TenantRepo) ListAll(_ context.Context) ([]*entity.Tenant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Tenant, 0, len(r.s.tenantOrder))
	for _, id := range r.s.tenantOrder {
		cp := *r.s.tenants[id]
		out = append(out, &cp)
	}
	return out, nil
}
