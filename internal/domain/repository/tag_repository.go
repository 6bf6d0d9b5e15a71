package repository

import (
	"context"
	"time"

	"github.com/sunstone-app/sunstone-api/internal/domain/entity"
)

// TagRepository define el puerto de persistencia para Tag y TagAssignment.
type TagRepository interface {
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.Tag, error)
	ListAutoApply(ctx context.Context, tenantID string) ([]*entity.Tag, error)
	GetByID(ctx context.Context, tenantID, id string) (*entity.Tag, error)
	// GetByName busca por nombre exacto (sin normalizar mayúsculas ni espacios).
	GetByName(ctx context.Context, tenantID, name string) (*entity.Tag, error)
	// Create devuelve domain.ErrDuplicate si ya existe un tag con ese nombre en el tenant.
	Create(ctx context.Context, tag *entity.Tag) error
	// CreateIfAbsent inserta el tag salvo que ya exista uno con el mismo nombre en el tenant.
	// created=false no es un error.
	CreateIfAbsent(ctx context.Context, tag *entity.Tag) (created bool, err error)
	Update(ctx context.Context, tag *entity.Tag) error
	Delete(ctx context.Context, tenantID, id string) error

	// Assign inserta la asignación si no existe (operación atómica).
	// assigned=false significa que ya estaba asignado.
	Assign(ctx context.Context, clientID, tagID string, at time.Time) (assigned bool, err error)
	// Unassign elimina la asignación; removed=false si no existía.
	Unassign(ctx context.Context, clientID, tagID string) (removed bool, err error)
	// ListByClient devuelve los tags asignados al cliente.
	ListByClient(ctx context.Context, clientID string) ([]*entity.Tag, error)
}
