// Package autotag contiene el evaluador de tags automáticos: decide qué tags asignar o
// retirar a un cliente tras una venta completada o un consentimiento firmado.
package autotag

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/sunstone-app/sunstone-api/internal/domain"
	"github.com/sunstone-app/sunstone-api/internal/domain/entity"
	"github.com/sunstone-app/sunstone-api/internal/domain/repository"
	"github.com/sunstone-app/sunstone-api/internal/domain/rules"
	"github.com/sunstone-app/sunstone-api/pkg/metrics"
	"github.com/sunstone-app/sunstone-api/pkg/tracing"
)

const tracerName = "github.com/sunstone-app/sunstone-api/internal/application/autotag"

// Tipos de evento que disparan la evaluación.
const (
	EventSale   = "sale"
	EventWaiver = "waiver"
)

// EventContext evento que dispara la evaluación. EventName (opcional) crea o reutiliza
// un tag con ese nombre exacto.
type EventContext struct {
	Type      string
	EventName string
}

// Outcome mutaciones aplicadas en una evaluación.
type Outcome struct {
	ClientID       string
	CompletedSales int
	Assigned       []*entity.Tag // asignaciones nuevas (las ya existentes no aparecen)
	Removed        []*entity.Tag
	VisitStamped   bool
}

// Evaluator evaluador de reglas de auto-tagging.
//
// No abre transacción: cada paso es una escritura independiente y un fallo intermedio
// deja aplicadas las anteriores. Re-ejecutar converge al mismo estado.
type Evaluator struct {
	clients repository.ClientRepository
	tags    repository.TagRepository
	sales   repository.SaleRepository
	log     zerolog.Logger
	now     func() time.Time
	newID   func() string
}

// NewEvaluator construye el evaluador.
func NewEvaluator(
	clients repository.ClientRepository,
	tags repository.TagRepository,
	sales repository.SaleRepository,
	log zerolog.Logger,
) *Evaluator {
	return &Evaluator{
		clients: clients,
		tags:    tags,
		sales:   sales,
		log:     log.With().Str("component", "autotag").Logger(),
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
}

// WithClock reemplaza el reloj (tests).
func (e *Evaluator) WithClock(now func() time.Time) *Evaluator {
	e.now = now
	return e
}

// Evaluate aplica las reglas al cliente. El caller ya persistió el evento disparador
// (la venta se cuenta) y verificó que el cliente pertenece al tenant.
//
//  1. Tags automáticos del tenant (se siembran los por defecto si no hay).
//  2. Conteo de ventas completadas.
//  3. new_client (<= 1) / repeat_client (>= 2).
//  4. Tag del evento, si viene nombre.
//  5. Asignación atómica si no existe.
//  6. Si es recurrente, se retiran los tags new_client.
//  7. En ventas, se marca la última visita.
func (e *Evaluator) Evaluate(ctx context.Context, tenantID, clientID string, ev EventContext) (out *Outcome, err error) {
	if ev.Type != EventSale && ev.Type != EventWaiver {
		return nil, fmt.Errorf("%w: tipo de evento %q", domain.ErrInvalidInput, ev.Type)
	}
	ctx, span := tracing.Start(ctx, tracerName, "autotag.Evaluate",
		attribute.String("tenant.id", tenantID),
		attribute.String("client.id", clientID),
		attribute.String("event.type", ev.Type),
	)
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}
		metrics.AutoTagEvaluations.WithLabelValues(ev.Type, result).Inc()
		tracing.End(span, err)
	}()

	autoTags, err := e.EnsureAutoTags(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	count, err := e.sales.CountCompletedByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("autotag: contar ventas: %w", err)
	}
	out = &Outcome{ClientID: clientID, CompletedSales: count}

	var targets []*entity.Tag
	for _, t := range autoTags {
		if rules.MatchesRule(t.AutoApplyRule, count) {
			targets = append(targets, t)
		}
	}
	if ev.EventName != "" {
		eventTag, err := e.resolveEventTag(ctx, tenantID, ev.EventName)
		if err != nil {
			return nil, err
		}
		targets = append(targets, eventTag)
	}

	now := e.now()
	for _, t := range targets {
		assigned, err := e.tags.Assign(ctx, clientID, t.ID, now)
		if err != nil {
			return nil, fmt.Errorf("autotag: asignar %q: %w", t.Name, err)
		}
		if assigned {
			out.Assigned = append(out.Assigned, t)
			metrics.AutoTagMutations.WithLabelValues("assigned").Inc()
		}
	}

	if rules.IsRepeatClient(count) {
		current, err := e.tags.ListByClient(ctx, clientID)
		if err != nil {
			return nil, fmt.Errorf("autotag: tags del cliente: %w", err)
		}
		for _, t := range current {
			if t.AutoApplyRule != entity.RuleNewClient {
				continue
			}
			removed, err := e.tags.Unassign(ctx, clientID, t.ID)
			if err != nil {
				return nil, fmt.Errorf("autotag: retirar %q: %w", t.Name, err)
			}
			if removed {
				out.Removed = append(out.Removed, t)
				metrics.AutoTagMutations.WithLabelValues("removed").Inc()
			}
		}
	}

	if ev.Type == EventSale {
		if err := e.clients.TouchLastVisit(ctx, tenantID, clientID, now); err != nil {
			return nil, fmt.Errorf("autotag: última visita: %w", err)
		}
		out.VisitStamped = true
	}

	e.log.Debug().
		Str("tenant_id", tenantID).
		Str("client_id", clientID).
		Str("event", ev.Type).
		Int("completed_sales", count).
		Int("assigned", len(out.Assigned)).
		Int("removed", len(out.Removed)).
		Msg("auto-tagging evaluado")
	return out, nil
}

// EnsureAutoTags devuelve los tags automáticos del tenant, sembrando "New Client" y
// "Repeat Client" si no hay ninguno.
func (e *Evaluator) EnsureAutoTags(ctx context.Context, tenantID string) ([]*entity.Tag, error) {
	list, err := e.tags.ListAutoApply(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("autotag: listar tags automáticos: %w", err)
	}
	if len(list) > 0 {
		return list, nil
	}

	now := e.now()
	for _, def := range rules.DefaultAutoTags() {
		tag := def
		tag.ID = e.newID()
		tag.TenantID = tenantID
		tag.CreatedAt = now
		created, err := e.tags.CreateIfAbsent(ctx, &tag)
		if err != nil {
			return nil, fmt.Errorf("autotag: sembrar %q: %w", tag.Name, err)
		}
		if !created {
			e.log.Warn().Str("tenant_id", tenantID).Str("tag", tag.Name).
				Msg("ya existe un tag con el nombre por defecto; no se siembra")
		}
	}
	e.log.Info().Str("tenant_id", tenantID).Msg("tags automáticos por defecto sembrados")

	list, err = e.tags.ListAutoApply(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("autotag: recargar tags automáticos: %w", err)
	}
	return list, nil
}

// resolveEventTag busca el tag con el nombre exacto del evento o lo crea (manual, color fijo).
// Si otro proceso lo crea entre la búsqueda y el insert, se relee el existente.
func (e *Evaluator) resolveEventTag(ctx context.Context, tenantID, name string) (*entity.Tag, error) {
	tag, err := e.tags.GetByName(ctx, tenantID, name)
	if err != nil {
		return nil, fmt.Errorf("autotag: buscar tag de evento: %w", err)
	}
	if tag != nil {
		return tag, nil
	}

	tag = &entity.Tag{
		ID:            e.newID(),
		TenantID:      tenantID,
		Name:          name,
		Color:         entity.ColorEvent,
		AutoApply:     false,
		AutoApplyRule: entity.RuleNone,
		CreatedAt:     e.now(),
	}
	created, err := e.tags.CreateIfAbsent(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("autotag: crear tag de evento: %w", err)
	}
	if created {
		return tag, nil
	}
	tag, err = e.tags.GetByName(ctx, tenantID, name)
	if err != nil {
		return nil, fmt.Errorf("autotag: releer tag de evento: %w", err)
	}
	if tag == nil {
		return nil, fmt.Errorf("autotag: tag de evento %q: %w", name, domain.ErrConflict)
	}
	return tag, nil
}
