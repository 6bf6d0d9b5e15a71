package repository

import (
	"context"

	"github.com/sunstone-app/sunstone-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	// CountCompletedByClient cuenta las ventas con status completed del cliente.
	CountCompletedByClient(ctx context.Context, clientID string) (int, error)
}

// WaiverRepository define el puerto de persistencia para Waiver.
type WaiverRepository interface {
	Create(ctx context.Context, waiver *entity.Waiver) error
}
