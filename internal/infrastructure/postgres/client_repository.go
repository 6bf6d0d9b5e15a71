package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sunstone-app/sunstone-api/internal/domain"
	"github.com/sunstone-app/sunstone-api/internal/domain/entity"
	"github.com/sunstone-app/sunstone-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, tenant_id, name, email, phone, birthday, last_visit_at, created_at, updated_at`

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.TenantID, c.Name, c.Email, c.Phone, c.Birthday, c.LastVisitAt, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente del tenant; (nil, nil) si no existe.
func (r *ClientRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE tenant_id = $1 AND id = $2`
	c, err := scanClient(r.q.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// ListByTenant lista clientes ordenados por nombre.
func (r *ClientRepo) ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE tenant_id = $1 ORDER BY name, id LIMIT $2 OFFSET $3`
	return r.list(ctx, "list clients", query, tenantID, limit, offset)
}

// Update actualiza los datos editables del cliente.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	query := `
		UPDATE clients SET name = $3, email = $4, phone = $5, birthday = $6, updated_at = $7
		WHERE tenant_id = $1 AND id = $2`
	tag, err := r.q.Exec(ctx, query, c.TenantID, c.ID, c.Name, c.Email, c.Phone, c.Birthday, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el cliente; las asignaciones de tags caen por ON DELETE CASCADE.
func (r *ClientRepo) Delete(ctx context.Context, tenantID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM clients WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// TouchLastVisit marca la última visita del cliente.
func (r *ClientRepo) TouchLastVisit(ctx context.Context, tenantID, clientID string, at time.Time) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE clients SET last_visit_at = $3, updated_at = $3 WHERE tenant_id = $1 AND id = $2`,
		tenantID, clientID, at,
	)
	if err != nil {
		return fmt.Errorf("touch last visit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListWithBirthday lista los clientes con cumpleaños registrado.
func (r *ClientRepo) ListWithBirthday(ctx context.Context, tenantID string) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE tenant_id = $1 AND birthday IS NOT NULL ORDER BY name, id`
	return r.list(ctx, "list birthdays", query, tenantID)
}

// ListLapsed lista clientes cuya última visita es anterior a before, las más antiguas primero.
func (r *ClientRepo) ListLapsed(ctx context.Context, tenantID string, before time.Time, limit int) ([]*entity.Client, error) {
	query := `
		SELECT ` + clientColumns + ` FROM clients
		WHERE tenant_id = $1 AND last_visit_at IS NOT NULL AND last_visit_at < $2
		ORDER BY last_visit_at ASC, id LIMIT $3`
	return r.list(ctx, "list lapsed", query, tenantID, before, limit)
}

// ListCreatedSince lista clientes creados desde since, los más recientes primero.
func (r *ClientRepo) ListCreatedSince(ctx context.Context, tenantID string, since time.Time, limit int) ([]*entity.Client, error) {
	query := `
		SELECT ` + clientColumns + ` FROM clients
		WHERE tenant_id = $1 AND created_at >= $2
		ORDER BY created_at DESC, id LIMIT $3`
	return r.list(ctx, "list created since", query, tenantID, since, limit)
}

func (r *ClientRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Client, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(&c.ID, &c.TenantID, &c.Name, &c.Email, &c.Phone, &c.Birthday, &c.LastVisitAt, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
