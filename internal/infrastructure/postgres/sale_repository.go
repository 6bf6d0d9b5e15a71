package postgres

import (
	"context"
	"fmt"

	"github.com/sunstone-app/sunstone-api/internal/domain"
	"github.com/sunstone-app/sunstone-api/internal/domain/entity"
	"github.com/sunstone-app/sunstone-api/internal/domain/repository"
)

var (
	_ repository.SaleRepository   = (*SaleRepo)(nil)
	_ repository.WaiverRepository = (*WaiverRepo)(nil)
)

// SaleRepo implementación de SaleRepository.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta (total como NUMERIC vía pgx-shopspring-decimal).
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO sales (id, tenant_id, client_id, status, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.TenantID, s.ClientID, s.Status, s.Total, s.CreatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CountCompletedByClient cuenta las ventas completadas del cliente.
func (r *SaleRepo) CountCompletedByClient(ctx context.Context, clientID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM sales WHERE client_id = $1 AND status = $2`,
		clientID, entity.SaleStatusCompleted,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count sales: %w", err)
	}
	return n, nil
}

// WaiverRepo implementación de WaiverRepository.
type WaiverRepo struct {
	q Querier
}

// NewWaiverRepository construye el adaptador.
func NewWaiverRepository(q Querier) *WaiverRepo {
	return &WaiverRepo{q: q}
}

// Create persiste el consentimiento. event_name vacío se guarda como NULL.
func (r *WaiverRepo) Create(ctx context.Context, w *entity.Waiver) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO waivers (id, tenant_id, client_id, event_name, signed_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)`,
		w.ID, w.TenantID, w.ClientID, w.EventName, w.SignedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert waiver: %w", err)
	}
	return nil
}
