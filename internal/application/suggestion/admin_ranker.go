package suggestion

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/sunstone-app/sunstone-api/internal/application/dto"
	"github.com/sunstone-app/sunstone-api/internal/domain/entity"
	"github.com/sunstone-app/sunstone-api/internal/domain/repository"
	"github.com/sunstone-app/sunstone-api/internal/domain/rules"
	"github.com/sunstone-app/sunstone-api/pkg/tracing"
)

// AdminRanker calcula las sugerencias del back-office sobre todos los tenants.
type AdminRanker struct {
	tenants repository.TenantRepository
	now     func() time.Time
}

// NewAdminRanker construye el ranker de plataforma.
func NewAdminRanker(tenants repository.TenantRepository) *AdminRanker {
	return &AdminRanker{tenants: tenants, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (r *AdminRanker) WithClock(now func() time.Time) *AdminRanker {
	r.now = now
	return r
}

// Rank devuelve como máximo 8 sugerencias ordenadas por urgencia. Los tenants suspendidos
// se ignoran y un tenant puede aparecer más de una vez.
func (r *AdminRanker) Rank(ctx context.Context) (ranked []entity.Suggestion, err error) {
	ctx, span := tracing.Start(ctx, tracerName, "suggestion.RankTenants")
	defer func() { tracing.End(span, err) }()

	tenants, err := r.tenants.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin suggestions: tenants: %w", err)
	}
	ranked = rules.RankTenantSuggestions(tenants, r.now(), rules.MaxTenantSuggestions)
	span.SetAttributes(attribute.Int("tenants", len(tenants)), attribute.Int("suggestions.returned", len(ranked)))
	observe(ranked)
	return ranked, nil
}

// List envuelve Rank en el DTO de respuesta.
func (r *AdminRanker) List(ctx context.Context) (*dto.SuggestionListResponse, error) {
	ranked, err := r.Rank(ctx)
	if err != nil {
		return nil, err
	}
	return toListResponse(ranked), nil
}
