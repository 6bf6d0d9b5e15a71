package memory

import (
	"context"
	"sort"
	"time"

	"github.com/sunstone-app/sunstone-api/internal/domain"
	"github.com/sunstone-app/sunstone-api/internal/domain/entity"
	"github.com/sunstone-app/sunstone-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación en memoria de ClientRepository.
type ClientRepo struct {
	s *Store
}

func (r *ClientRepo) Create(_ context.Context, client *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clients[client.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.clients[client.ID] = copyClient(client)
	r.s.clientOrder = append(r.s.clientOrder, client.ID)
	return nil
}

func (r *ClientRepo) GetByID(_ context.Context, tenantID, id string) (*entity.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.clients[id]
	if !ok || c.TenantID != tenantID {
		return nil, nil
	}
	return copyClient(c), nil
}

// ListByTenant lista ordenado por nombre, como la implementación SQL.
func (r *ClientRepo) ListByTenant(_ context.Context, tenantID string, limit, offset int) ([]*entity.Client, error) {
	list := r.filter(tenantID, func(*entity.Client) bool { return true })
	sort.SliceStable(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return page(list, limit, offset), nil
}

func (r *ClientRepo) Update(_ context.Context, client *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clients[client.ID]
	if !ok || c.TenantID != client.TenantID {
		return domain.ErrNotFound
	}
	r.s.clients[client.ID] = copyClient(client)
	return nil
}

// Delete elimina el cliente y sus asignaciones de tags.
func (r *ClientRepo) Delete(_ context.Context, tenantID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clients[id]
	if !ok || c.TenantID != tenantID {
		return domain.ErrNotFound
	}
	delete(r.s.clients, id)
	r.s.clientOrder = without(r.s.clientOrder, id)
	for k := range r.s.assignments {
		if k.clientID == id {
			delete(r.s.assignments, k)
		}
	}
	return nil
}

func (r *ClientRepo) TouchLastVisit(_ context.Context, tenantID, clientID string, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clients[clientID]
	if !ok || c.TenantID != tenantID {
		return domain.ErrNotFound
	}
	v := at
	c.LastVisitAt = &v
	c.UpdatedAt = at
	return nil
}

func (r *ClientRepo) ListWithBirthday(_ context.Context, tenantID string) ([]*entity.Client, error) {
	return r.filter(tenantID, func(c *entity.Client) bool { return c.Birthday != nil }), nil
}

func (r *ClientRepo) ListLapsed(_ context.Context, tenantID string, before time.Time, limit int) ([]*entity.Client, error) {
	list := r.filter(tenantID, func(c *entity.Client) bool {
		return c.LastVisitAt != nil && c.LastVisitAt.Before(before)
	})
	sort.SliceStable(list, func(i, j int) bool { return list[i].LastVisitAt.Before(*list[j].LastVisitAt) })
	return page(list, limit, 0), nil
}

func (r *ClientRepo) ListCreatedSince(_ context.Context, tenantID string, since time.Time, limit int) ([]*entity.Client, error) {
	list := r.filter(tenantID, func(c *entity.Client) bool { return !c.CreatedAt.Before(since) })
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return page(list, limit, 0), nil
}

// filter recorre en orden de inserción para que los resultados sean deterministas.
func (r *ClientRepo) filter(tenantID string, keep func(*entity.Client) bool) []*entity.Client {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Client
	for _, id := range r.s.clientOrder {
		c, ok := r.s.clients[id]
		if !ok || c.TenantID != tenantID || !keep(c) {
			continue
		}
		out = append(out, copyClient(c))
	}
	return out
}

func page[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list
}

func without(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
