package memory

import (
	"context"

	"github.com/sunstone-app/sunstone-api/internal/domain"
	"github.com/sunstone-app/sunstone-api/internal/domain/entity"
	"github.com/sunstone-app/sunstone-api/internal/domain/repository"
)

var (
	_ repository.SaleRepository   = (*SaleRepo)(nil)
	_ repository.WaiverRepository = (*WaiverRepo)(nil)
)

// SaleRepo implementación en memoria de SaleRepository.
type SaleRepo struct {
	s *Store
}

func (r *SaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.sales[sale.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *sale
	r.s.sales[sale.ID] = &cp
	return nil
}

func (r *SaleRepo) CountCompletedByClient(_ context.Context, clientID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, sale := range r.s.sales {
		if sale.ClientID == clientID && sale.Status == entity.SaleStatusCompleted {
			n++
		}
	}
	return n, nil
}

// WaiverRepo implementación en memoria de WaiverRepository.
type WaiverRepo struct {
	s *Store
}

func (r *WaiverRepo) Create(_ context.Context, waiver *entity.Waiver) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.waivers[waiver.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *waiver
	r.s.waivers[waiver.ID] = &cp
	return nil
}
