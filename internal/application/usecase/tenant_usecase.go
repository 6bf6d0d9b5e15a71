package usecase

import (
	"context"

	"github.com/sunstone-app/sunstone-api/internal/application/dto"
	"github.com/sunstone-app/sunstone-api/internal/domain/entity"
	"github.com/sunstone-app/sunstone-api/internal/domain/repository"
)

// TenantUseCase consulta de tenants para el back-office de plataforma.
type TenantUseCase struct {
	repo repository.TenantRepository
}

// NewTenantUseCase construye el caso de uso.
func NewTenantUseCase(repo repository.TenantRepository) *TenantUseCase {
	return &TenantUseCase{repo: repo}
}

// List lista tenants con paginación.
func (uc *TenantUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.TenantResponse, dto.PageResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, dto.PageResponse{}, err
	}
	items := make([]dto.TenantResponse, 0, len(list))
	for _, t := range list {
		items = append(items, toTenantResponse(t))
	}
	return items, dto.PageResponse{Limit: page.Limit, Offset: page.Offset}, nil
}

// IsSuspended informa si el tenant está suspendido. Un tenant que aún no existe en la
// tabla (alta en curso) no cuenta como suspendido.
func (uc *TenantUseCase) IsSuspended(ctx context.Context, tenantID string) (bool, error) {
	t, err := uc.repo.GetByID(ctx, tenantID)
	if err != nil {
		return false, err
	}
	return t != nil && t.IsSuspended, nil
}

// Each recorre todos los tenants página a página (herramientas batch).
func (uc *TenantUseCase) Each(ctx context.Context, pageSize int, fn func(*entity.Tenant) error) error {
	if pageSize <= 0 {
		pageSize = 100
	}
	for offset := 0; ; offset += pageSize {
		list, err := uc.repo.List(ctx, pageSize, offset)
		if err != nil {
			return err
		}
		for _, t := range list {
			if err := fn(t); err != nil {
				return err
			}
		}
		if len(list) < pageSize {
			return nil
		}
	}
}
