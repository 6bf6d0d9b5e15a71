package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sunstone-app/sunstone-api/internal/application/dto"
	"github.com/sunstone-app/sunstone-api/internal/domain"
	"github.com/sunstone-app/sunstone-api/internal/domain/entity"
	"github.com/sunstone-app/sunstone-api/internal/domain/repository"
)

// AutoTagSeeder siembra los tags automáticos por defecto de un tenant (autotag.Evaluator).
type AutoTagSeeder interface {
	EnsureAutoTags(ctx context.Context, tenantID string) ([]*entity.Tag, error)
}

// TagUseCase casos de uso de tags y asignaciones manuales.
type TagUseCase struct {
	tags    repository.TagRepository
	clients repository.ClientRepository
	seeder  AutoTagSeeder
	now     func() time.Time
}

// NewTagUseCase construye el caso de uso.
func NewTagUseCase(tags repository.TagRepository, clients repository.ClientRepository, seeder AutoTagSeeder) *TagUseCase {
	return &TagUseCase{tags: tags, clients: clients, seeder: seeder, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *TagUseCase) WithClock(now func() time.Time) *TagUseCase {
	uc.now = now
	return uc
}

// EnsureDefaults siembra "New Client" / "Repeat Client" si el tenant no tiene tags automáticos.
// Devuelve cuántos tags automáticos quedaron.
func (uc *TagUseCase) EnsureDefaults(ctx context.Context, tenantID string) (int, error) {
	list, err := uc.seeder.EnsureAutoTags(ctx, tenantID)
	if err != nil {
		return 0, err
	}
	return len(list), nil
}

// List lista los tags del tenant, sembrando los automáticos por defecto si faltan.
func (uc *TagUseCase) List(ctx context.Context, tenantID string) ([]dto.TagResponse, error) {
	if _, err := uc.seeder.EnsureAutoTags(ctx, tenantID); err != nil {
		return nil, err
	}
	list, err := uc.tags.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TagResponse, 0, len(list))
	for _, t := range list {
		items = append(items, toTagResponse(t))
	}
	return items, nil
}

// Create crea un tag. Un tag automático necesita una regla distinta de "none".
func (uc *TagUseCase) Create(ctx context.Context, tenantID string, in dto.CreateTagRequest) (*dto.TagResponse, error) {
	tag := &entity.Tag{
		ID:            uuid.New().String(),
		TenantID:      tenantID,
		Name:          in.Name,
		Color:         in.Color,
		AutoApply:     in.AutoApply,
		AutoApplyRule: in.AutoApplyRule,
		CreatedAt:     uc.now(),
	}
	if tag.Color == "" {
		tag.Color = entity.ColorDefault
	}
	if tag.AutoApplyRule == "" {
		tag.AutoApplyRule = entity.RuleNone
	}
	if err := validateTag(tag); err != nil {
		return nil, err
	}
	if err := uc.tags.Create(ctx, tag); err != nil {
		return nil, err
	}
	resp := toTagResponse(tag)
	return &resp, nil
}

// Update aplica una actualización parcial al tag.
func (uc *TagUseCase) Update(ctx context.Context, tenantID, id string, in dto.UpdateTagRequest) (*dto.TagResponse, error) {
	tag, err := uc.tags.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, domain.ErrNotFound
	}
	patch := entity.TagPatch{Name: in.Name, Color: in.Color, AutoApply: in.AutoApply, AutoApplyRule: in.AutoApplyRule}
	if !patch.Empty() {
		patch.Apply(tag)
		if err := validateTag(tag); err != nil {
			return nil, err
		}
		if err := uc.tags.Update(ctx, tag); err != nil {
			return nil, err
		}
	}
	resp := toTagResponse(tag)
	return &resp, nil
}

// Delete elimina el tag; sus asignaciones se borran en cascada.
func (uc *TagUseCase) Delete(ctx context.Context, tenantID, id string) error {
	return uc.tags.Delete(ctx, tenantID, id)
}

// Assign asigna manualmente un tag a un cliente. Repetir la asignación no es un error;
// el bool indica si se creó una asignación nueva.
func (uc *TagUseCase) Assign(ctx context.Context, tenantID, clientID, tagID string) (bool, error) {
	if err := uc.checkPair(ctx, tenantID, clientID, tagID); err != nil {
		return false, err
	}
	return uc.tags.Assign(ctx, clientID, tagID, uc.now())
}

// Unassign retira un tag de un cliente. Retirar uno no asignado no es un error.
func (uc *TagUseCase) Unassign(ctx context.Context, tenantID, clientID, tagID string) (bool, error) {
	if err := uc.checkPair(ctx, tenantID, clientID, tagID); err != nil {
		return false, err
	}
	return uc.tags.Unassign(ctx, clientID, tagID)
}

// checkPair verifica que cliente y tag pertenezcan al tenant.
func (uc *TagUseCase) checkPair(ctx context.Context, tenantID, clientID, tagID string) error {
	client, err := uc.clients.GetByID(ctx, tenantID, clientID)
	if err != nil {
		return err
	}
	if client == nil {
		return fmt.Errorf("cliente %s: %w", clientID, domain.ErrNotFound)
	}
	tag, err := uc.tags.GetByID(ctx, tenantID, tagID)
	if err != nil {
		return err
	}
	if tag == nil {
		return fmt.Errorf("tag %s: %w", tagID, domain.ErrNotFound)
	}
	return nil
}

func validateTag(t *entity.Tag) error {
	// El nombre se guarda tal cual (sin recortar); solo se rechaza si está en blanco.
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: nombre de tag requerido", domain.ErrInvalidInput)
	}
	if !entity.ValidRule(t.AutoApplyRule) {
		return fmt.Errorf("%w: regla %q", domain.ErrInvalidInput, t.AutoApplyRule)
	}
	if t.AutoApply && t.AutoApplyRule == entity.RuleNone {
		return fmt.Errorf("%w: un tag automático necesita regla", domain.ErrInvalidInput)
	}
	return nil
}
