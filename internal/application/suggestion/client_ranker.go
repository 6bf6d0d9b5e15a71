// Package suggestion genera los avisos accionables de los dashboards: sugerencias de
// clientes para cada tenant y sugerencias de tenants para el back-office de plataforma.
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
	"github.com/sunstone-app/sunstone-api/pkg/metrics"
	"github.com/sunstone-app/sunstone-api/pkg/tracing"
)

const (
	tracerName = "github.com/sunstone-app/sunstone-api/internal/application/suggestion"
	day        = 24 * time.Hour
)

// ClientRanker calcula las sugerencias de clientes de un tenant.
type ClientRanker struct {
	clients repository.ClientRepository
	sales   repository.SaleRepository
	now     func() time.Time
}

// NewClientRanker construye el ranker.
func NewClientRanker(clients repository.ClientRepository, sales repository.SaleRepository) *ClientRanker {
	return &ClientRanker{clients: clients, sales: sales, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (r *ClientRanker) WithClock(now func() time.Time) *ClientRanker {
	r.now = now
	return r
}

// Rank devuelve como máximo 6 sugerencias, una por cliente, de la más urgente a la menos.
// Candidatos: cumpleaños en 14 días, sin visita en más de 90 días (10 como máximo) y
// leads de los últimos 7 días sin compras (10 como máximo, un conteo de ventas por cada uno).
func (r *ClientRanker) Rank(ctx context.Context, tenantID string) (ranked []entity.Suggestion, err error) {
	ctx, span := tracing.Start(ctx, tracerName, "suggestion.RankClients", attribute.String("tenant.id", tenantID))
	defer func() { tracing.End(span, err) }()

	now := r.now()
	var candidates []entity.Suggestion

	withBirthday, err := r.clients.ListWithBirthday(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("suggestions: cumpleaños: %w", err)
	}
	for _, c := range withBirthday {
		if s, ok := rules.BirthdaySuggestion(c, now); ok {
			candidates = append(candidates, s)
		}
	}

	lapsed, err := r.clients.ListLapsed(ctx, tenantID, now.Add(-rules.LapsedAfterDays*day), rules.LapsedCandidates)
	if err != nil {
		return nil, fmt.Errorf("suggestions: clientes inactivos: %w", err)
	}
	for _, c := range lapsed {
		if s, ok := rules.LapsedSuggestion(c, now); ok {
			candidates = append(candidates, s)
		}
	}

	fresh, err := r.clients.ListCreatedSince(ctx, tenantID, now.Add(-rules.NewLeadWindowDays*day), rules.NewLeadCandidates)
	if err != nil {
		return nil, fmt.Errorf("suggestions: clientes nuevos: %w", err)
	}
	for _, c := range fresh {
		count, err := r.sales.CountCompletedByClient(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("suggestions: ventas de %s: %w", c.ID, err)
		}
		if s, ok := rules.NewLeadSuggestion(c, count, now); ok {
			candidates = append(candidates, s)
		}
	}

	ranked = rules.RankClientSuggestions(candidates, rules.MaxClientSuggestions)
	span.SetAttributes(attribute.Int("suggestions.candidates", len(candidates)), attribute.Int("suggestions.returned", len(ranked)))
	observe(ranked)
	return ranked, nil
}

// List envuelve Rank en el DTO de respuesta.
func (r *ClientRanker) List(ctx context.Context, tenantID string) (*dto.SuggestionListResponse, error) {
	ranked, err := r.Rank(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return toListResponse(ranked), nil
}

func observe(list []entity.Suggestion) {
	for _, s := range list {
		metrics.SuggestionsEmitted.WithLabelValues(s.Type).Inc()
	}
}

func toListResponse(list []entity.Suggestion) *dto.SuggestionListResponse {
	out := make([]dto.SuggestionDTO, 0, len(list))
	for _, s := range list {
		out = append(out, dto.SuggestionDTO{
			Type:        s.Type,
			Urgency:     s.Urgency,
			SubjectID:   s.SubjectID,
			SubjectName: s.SubjectName,
			Title:       s.Title,
			Message:     s.Message,
			Days:        s.Days,
		})
	}
	return &dto.SuggestionListResponse{Total: len(out), Suggestions: out}
}
