package memory

import (
	"context"
	"sort"
	"time"

	"github.com/sunstone-app/sunstone-api/internal/domain"
	"github.com/sunstone-app/sunstone-api/internal/domain/entity"
	"github.com/sunstone-app/sunstone-api/internal/domain/repository"
)

var _ repository.TagRepository = (*TagRepo)(nil)

// TagRepo implementación en memoria de TagRepository.
type TagRepo struct {
	s *Store
}

func (r *TagRepo) ListByTenant(_ context.Context, tenantID string) ([]*entity.Tag, error) {
	list := r.filter(func(t *entity.Tag) bool { return t.TenantID == tenantID })
	sort.SliceStable(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *TagRepo) ListAutoApply(_ context.Context, tenantID string) ([]*entity.Tag, error) {
	return r.filter(func(t *entity.Tag) bool { return t.TenantID == tenantID && t.AutoApply }), nil
}

func (r *TagRepo) GetByID(_ context.Context, tenantID, id string) (*entity.Tag, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.tags[id]
	if !ok || t.TenantID != tenantID {
		return nil, nil
	}
	return copyTag(t), nil
}

func (r *TagRepo) GetByName(_ context.Context, tenantID, name string) (*entity.Tag, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if t := r.byNameLocked(tenantID, name); t != nil {
		return copyTag(t), nil
	}
	return nil, nil
}

func (r *TagRepo) Create(ctx context.Context, tag *entity.Tag) error {
	created, err := r.CreateIfAbsent(ctx, tag)
	if err != nil {
		return err
	}
	if !created {
		return domain.ErrDuplicate
	}
	return nil
}

func (r *TagRepo) CreateIfAbsent(_ context.Context, tag *entity.Tag) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.byNameLocked(tag.TenantID, tag.Name) != nil {
		return false, nil
	}
	if _, ok := r.s.tags[tag.ID]; ok {
		return false, domain.ErrDuplicate
	}
	r.s.tags[tag.ID] = copyTag(tag)
	r.s.tagOrder = append(r.s.tagOrder, tag.ID)
	return true, nil
}

func (r *TagRepo) Update(_ context.Context, tag *entity.Tag) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.tags[tag.ID]
	if !ok || cur.TenantID != tag.TenantID {
		return domain.ErrNotFound
	}
	if other := r.byNameLocked(tag.TenantID, tag.Name); other != nil && other.ID != tag.ID {
		return domain.ErrDuplicate
	}
	r.s.tags[tag.ID] = copyTag(tag)
	return nil
}

// Delete elimina el tag y sus asignaciones (equivalente al ON DELETE CASCADE).
func (r *TagRepo) Delete(_ context.Context, tenantID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tags[id]
	if !ok || t.TenantID != tenantID {
		return domain.ErrNotFound
	}
	delete(r.s.tags, id)
	r.s.tagOrder = without(r.s.tagOrder, id)
	for k := range r.s.assignments {
		if k.tagID == id {
			delete(r.s.assignments, k)
		}
	}
	return nil
}

func (r *TagRepo) Assign(_ context.Context, clientID, tagID string, at time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := assignmentKey{clientID: clientID, tagID: tagID}
	if _, ok := r.s.assignments[k]; ok {
		return false, nil
	}
	if _, ok := r.s.clients[clientID]; !ok {
		return false, domain.ErrNotFound
	}
	if _, ok := r.s.tags[tagID]; !ok {
		return false, domain.ErrNotFound
	}
	r.s.assignments[k] = entity.TagAssignment{ClientID: clientID, TagID: tagID, CreatedAt: at}
	return true, nil
}

func (r *TagRepo) Unassign(_ context.Context, clientID, tagID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := assignmentKey{clientID: clientID, tagID: tagID}
	if _, ok := r.s.assignments[k]; !ok {
		return false, nil
	}
	delete(r.s.assignments, k)
	return true, nil
}

func (r *TagRepo) ListByClient(_ context.Context, clientID string) ([]*entity.Tag, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Tag
	for _, id := range r.s.tagOrder {
		t, ok := r.s.tags[id]
		if !ok {
			continue
		}
		if _, assigned := r.s.assignments[assignmentKey{clientID: clientID, tagID: id}]; assigned {
			out = append(out, copyTag(t))
		}
	}
	return out, nil
}

// Assignments cuenta las filas de asignación del cliente (útil en tests de idempotencia).
func (r *TagRepo) Assignments(clientID string) int {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for k := range r.s.assignments {
		if k.clientID == clientID {
			n++
		}
	}
	return n
}

func (r *TagRepo) byNameLocked(tenantID, name string) *entity.Tag {
	for _, id := range r.s.tagOrder {
		if t, ok := r.s.tags[id]; ok && t.TenantID == tenantID && t.Name == name {
			return t
		}
	}
	return nil
}

func (r *TagRepo) filter(keep func(*entity.Tag) bool) []*entity.Tag {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Tag
	for _, id := range r.s.tagOrder {
		if t, ok := r.s.tags[id]; ok && keep(t) {
			out = append(out, copyTag(t))
		}
	}
	return out
}
