package repository

import (
	"context"
	"time"

	"github.com/sunstone-app/sunstone-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
// Todas las lecturas están acotadas al tenant; GetByID devuelve (nil, nil) si no existe.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.Client, error)
	ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, tenantID, id string) error

	// TouchLastVisit marca la última visita del cliente (venta completada).
	TouchLastVisit(ctx context.Context, tenantID, clientID string, at time.Time) error

	// ── Consultas de sugerencias ─────────────────────────────────────────────

	// ListWithBirthday devuelve los clientes con cumpleaños registrado.
	ListWithBirthday(ctx context.Context, tenantID string) ([]*entity.Client, error)
	// ListLapsed devuelve clientes cuya última visita es anterior a before,
	// la más antigua primero, como máximo limit.
	ListLapsed(ctx context.Context, tenantID string, before time.Time, limit int) ([]*entity.Client, error)
	// ListCreatedSince devuelve clientes creados desde since, el más reciente primero.
	ListCreatedSince(ctx context.Context, tenantID string, since time.Time, limit int) ([]*entity.Client, error)
}
