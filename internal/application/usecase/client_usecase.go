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

// ClientUseCase casos de uso CRUD para clientes de un tenant.
type ClientUseCase struct {
	clients repository.ClientRepository
	tags    repository.TagRepository
	now     func() time.Time
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clients repository.ClientRepository, tags repository.TagRepository) *ClientUseCase {
	return &ClientUseCase{clients: clients, tags: tags, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *ClientUseCase) WithClock(now func() time.Time) *ClientUseCase {
	uc.now = now
	return uc
}

// Create crea un cliente nuevo en el tenant.
func (uc *ClientUseCase) Create(ctx context.Context, tenantID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
	}
	now := uc.now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Birthday != "" {
		b, err := parseBirthday(in.Birthday)
		if err != nil {
			return nil, err
		}
		client.Birthday = &b
	}
	if err := uc.clients.Create(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client, nil), nil
}

// GetByID obtiene un cliente con sus tags.
func (uc *ClientUseCase) GetByID(ctx context.Context, tenantID, id string) (*dto.ClientResponse, error) {
	client, err := uc.clients.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	tags, err := uc.tags.ListByClient(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	return toClientResponse(client, tags), nil
}

// List lista clientes del tenant con paginación (sin tags).
func (uc *ClientUseCase) List(ctx context.Context, tenantID string, page dto.PageRequest) ([]dto.ClientResponse, dto.PageResponse, error) {
	page.DefaultPage()
	list, err := uc.clients.ListByTenant(ctx, tenantID, page.Limit, page.Offset)
	if err != nil {
		return nil, dto.PageResponse{}, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClientResponse(c, nil))
	}
	return items, dto.PageResponse{Limit: page.Limit, Offset: page.Offset}, nil
}

// Update aplica una actualización parcial.
func (uc *ClientUseCase) Update(ctx context.Context, tenantID, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	patch := entity.ClientPatch{Email: in.Email, Phone: in.Phone, ClearBirthday: in.ClearBirthday}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: nombre vacío", domain.ErrInvalidInput)
		}
		patch.Name = &name
	}
	if in.Birthday != nil && !in.ClearBirthday {
		b, err := parseBirthday(*in.Birthday)
		if err != nil {
			return nil, err
		}
		patch.Birthday = &b
	}

	client, err := uc.clients.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if !patch.Empty() {
		patch.Apply(client, uc.now())
		if err := uc.clients.Update(ctx, client); err != nil {
			return nil, err
		}
	}
	tags, err := uc.tags.ListByClient(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	return toClientResponse(client, tags), nil
}

// Delete elimina un cliente (y sus asignaciones de tags).
func (uc *ClientUseCase) Delete(ctx context.Context, tenantID, id string) error {
	return uc.clients.Delete(ctx, tenantID, id)
}

func parseBirthday(s string) (time.Time, error) {
	b, err := time.Parse(dto.BirthdayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: cumpleaños %q (formato YYYY-MM-DD)", domain.ErrInvalidInput, s)
	}
	return b, nil
}
