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

var _ repository.TagRepository = (*TagRepo)(nil)

const tagColumns = `id, tenant_id, name, color, auto_apply, auto_apply_rule, created_at`

// TagRepo implementación de TagRepository sobre tags y tag_assignments.
type TagRepo struct {
	q Querier
}

// NewTagRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTagRepository(q Querier) *TagRepo {
	return &TagRepo{q: q}
}

// ListByTenant lista todos los tags del tenant por fecha de creación.
func (r *TagRepo) ListByTenant(ctx context.Context, tenantID string) ([]*entity.Tag, error) {
	query := `SELECT ` + tagColumns + ` FROM tags WHERE tenant_id = $1 ORDER BY created_at, name`
	return r.list(ctx, "list tags", query, tenantID)
}

// ListAutoApply lista los tags automáticos del tenant.
func (r *TagRepo) ListAutoApply(ctx context.Context, tenantID string) ([]*entity.Tag, error) {
	query := `SELECT ` + tagColumns + ` FROM tags WHERE tenant_id = $1 AND auto_apply ORDER BY created_at, name`
	return r.list(ctx, "list auto tags", query, tenantID)
}

// GetByID obtiene un tag del tenant; (nil, nil) si no existe.
func (r *TagRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Tag, error) {
	query := `SELECT ` + tagColumns + ` FROM tags WHERE tenant_id = $1 AND id = $2`
	return r.one(ctx, "get tag", query, tenantID, id)
}

// GetByName busca por nombre exacto (sensible a mayúsculas).
func (r *TagRepo) GetByName(ctx context.Context, tenantID, name string) (*entity.Tag, error) {
	query := `SELECT ` + tagColumns + ` FROM tags WHERE tenant_id = $1 AND name = $2`
	return r.one(ctx, "get tag by name", query, tenantID, name)
}

// Create inserta el tag; ErrDuplicate si el nombre ya existe en el tenant.
func (r *TagRepo) Create(ctx context.Context, t *entity.Tag) error {
	query := `INSERT INTO tags (` + tagColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, t.ID, t.TenantID, t.Name, t.Color, t.AutoApply, t.AutoApplyRule, t.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tag: %w", err)
	}
	return nil
}

// CreateIfAbsent inserta el tag salvo que el nombre ya exista en el tenant.
func (r *TagRepo) CreateIfAbsent(ctx context.Context, t *entity.Tag) (bool, error) {
	query := `
		INSERT INTO tags (` + tagColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (tenant_id, name) DO NOTHING`
	cmd, err := r.q.Exec(ctx, query, t.ID, t.TenantID, t.Name, t.Color, t.AutoApply, t.AutoApplyRule, t.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("insert tag if absent: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// Update actualiza nombre, color y regla.
func (r *TagRepo) Update(ctx context.Context, t *entity.Tag) error {
	query := `
		UPDATE tags SET name = $3, color = $4, auto_apply = $5, auto_apply_rule = $6
		WHERE tenant_id = $1 AND id = $2`
	cmd, err := r.q.Exec(ctx, query, t.TenantID, t.ID, t.Name, t.Color, t.AutoApply, t.AutoApplyRule)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update tag: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el tag; las asignaciones caen por ON DELETE CASCADE.
func (r *TagRepo) Delete(ctx context.Context, tenantID, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM tags WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Assign crea la asignación si no existe. La PK (client_id, tag_id) hace que dos
// asignaciones concurrentes terminen en una sola fila.
func (r *TagRepo) Assign(ctx context.Context, clientID, tagID string, at time.Time) (bool, error) {
	cmd, err := r.q.Exec(ctx, `
		INSERT INTO tag_assignments (client_id, tag_id, created_at) VALUES ($1, $2, $3)
		ON CONFLICT (client_id, tag_id) DO NOTHING`,
		clientID, tagID, at,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("assign tag: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// Unassign borra la asignación; false si no existía.
func (r *TagRepo) Unassign(ctx context.Context, clientID, tagID string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM tag_assignments WHERE client_id = $1 AND tag_id = $2`, clientID, tagID)
	if err != nil {
		return false, fmt.Errorf("unassign tag: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// ListByClient lista los tags asignados al cliente.
func (r *TagRepo) ListByClient(ctx context.Context, clientID string) ([]*entity.Tag, error) {
	query := `
		SELECT t.id, t.tenant_id, t.name, t.color, t.auto_apply, t.auto_apply_rule, t.created_at
		FROM tag_assignments a JOIN tags t ON t.id = a.tag_id
		WHERE a.client_id = $1
		ORDER BY t.created_at, t.name`
	return r.list(ctx, "list client tags", query, clientID)
}

func (r *TagRepo) one(ctx context.Context, op, query string, args ...any) (*entity.Tag, error) {
	t, err := scanTag(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return t, nil
}

func (r *TagRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Tag, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Tag
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func scanTag(row pgx.Row) (*entity.Tag, error) {
	var t entity.Tag
	if err := row.Scan(&t.ID, &t.TenantID, &t.Name, &t.Color, &t.AutoApply, &t.AutoApplyRule, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
