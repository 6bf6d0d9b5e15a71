package autotag_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunstone-app/sunstone-api/internal/application/autotag"
	"github.com/sunstone-app/sunstone-api/internal/domain"
	"github.com/sunstone-app/sunstone-api/internal/domain/entity"
	"github.com/sunstone-app/sunstone-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testTenantID = "00000000-0000-0000-0000-0000000000aa"

var testNow = time.Date(2026, time.April, 12, 16, 0, 0, 0, time.UTC)

type fixture struct {
	store  *memory.Store
	eval   *autotag.Evaluator
	client *entity.Client
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	client := &entity.Client{
		ID:        uuid.New().String(),
		TenantID:  testTenantID,
		Name:      "Amara",
		CreatedAt: testNow.AddDate(0, -1, 0),
		UpdatedAt: testNow.AddDate(0, -1, 0),
	}
	require.NoError(t, store.Clients().Create(context.Background(), client))

	eval := autotag.NewEvaluator(store.Clients(), store.Tags(), store.Sales(), zerolog.Nop()).
		WithClock(func() time.Time { return testNow })
	return &fixture{store: store, eval: eval, client: client}
}

func (f *fixture) completeSale(t *testing.T) {
	t.Helper()
	require.NoError(t, f.store.Sales().Create(context.Background(), &entity.Sale{
		ID:        uuid.New().String(),
		TenantID:  testTenantID,
		ClientID:  f.client.ID,
		Status:    entity.SaleStatusCompleted,
		Total:     decimal.NewFromInt(120),
		CreatedAt: testNow,
	}))
}

func (f *fixture) tagNames(t *testing.T) []string {
	t.Helper()
	tags, err := f.store.Tags().ListByClient(context.Background(), f.client.ID)
	require.NoError(t, err)
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}

func names(tags []*entity.Tag) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.Name)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Reglas por número de ventas
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: primera venta completada → New Client y última visita marcada.
func TestEvaluate_PrimeraVenta_AsignaNewClient(t *testing.T) {
	f := newFixture(t)
	f.completeSale(t)

	out, err := f.eval.Evaluate(context.Background(), testTenantID, f.client.ID, autotag.EventContext{Type: autotag.EventSale})
	require.NoError(t, err)

	assert.Equal(t, 1, out.CompletedSales)
	assert.Equal(t, []string{entity.DefaultNewClientTag}, names(out.Assigned))
	assert.Empty(t, out.Removed)
	assert.True(t, out.VisitStamped)
	assert.Equal(t, []string{entity.DefaultNewClientTag}, f.tagNames(t))

	c, err := f.store.Clients().GetByID(context.Background(), testTenantID, f.client.ID)
	require.NoError(t, err)
	require.NotNil(t, c.LastVisitAt)
	assert.True(t, c.LastVisitAt.Equal(testNow))
}

// Caso 2: segunda venta → Repeat Client y se retira New Client.
func TestEvaluate_SegundaVenta_PasaARepeatClient(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.completeSale(t)
	_, err := f.eval.Evaluate(ctx, testTenantID, f.client.ID, autotag.EventContext{Type: autotag.EventSale})
	require.NoError(t, err)

	f.completeSale(t)
	out, err := f.eval.Evaluate(ctx, testTenantID, f.client.ID, autotag.EventContext{Type: autotag.EventSale})
	require.NoError(t, err)

	assert.Equal(t, 2, out.CompletedSales)
	assert.Equal(t, []string{entity.DefaultRepeatClientTag}, names(out.Assigned))
	assert.Equal(t, []string{entity.DefaultNewClientTag}, names(out.Removed))
	assert.Equal(t, []string{entity.DefaultRepeatClientTag}, f.tagNames(t))
}

// Caso 3: dos evaluaciones seguidas con el mismo contexto no cambian el conjunto final.
func TestEvaluate_Idempotente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ev := autotag.EventContext{Type: autotag.EventSale, EventName: "Spring Fair"}
	f.completeSale(t)

	first, err := f.eval.Evaluate(ctx, testTenantID, f.client.ID, ev)
	require.NoError(t, err)
	before := f.tagNames(t)

	second, err := f.eval.Evaluate(ctx, testTenantID, f.client.ID, ev)
	require.NoError(t, err)

	assert.Len(t, first.Assigned, 2)
	assert.Empty(t, second.Assigned, "la segunda evaluación no crea asignaciones nuevas")
	assert.Empty(t, second.Removed)
	assert.ElementsMatch(t, before, f.tagNames(t))
	assert.Equal(t, 2, f.store.Tags().Assignments(f.client.ID))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tags de evento
// ──────────────────────────────────────────────────────────────────────────────

// Caso 4: el nombre del evento se usa tal cual; mayúsculas distintas crean tags distintos.
func TestEvaluate_TagDeEvento_SensibleAMayusculas(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.eval.Evaluate(ctx, testTenantID, f.client.ID, autotag.EventContext{Type: autotag.EventWaiver, EventName: "Spring Fair"})
	require.NoError(t, err)
	_, err = f.eval.Evaluate(ctx, testTenantID, f.client.ID, autotag.EventContext{Type: autotag.EventWaiver, EventName: "spring fair"})
	require.NoError(t, err)

	all, err := f.store.Tags().ListByTenant(ctx, testTenantID)
	require.NoError(t, err)
	var eventTags []*entity.Tag
	for _, tag := range all {
		if !tag.AutoApply {
			eventTags = append(eventTags, tag)
		}
	}
	require.Len(t, eventTags, 2, "se esperan dos tags distintos")
	assert.ElementsMatch(t, []string{"Spring Fair", "spring fair"}, names(eventTags))
	for _, tag := range eventTags {
		assert.Equal(t, entity.ColorEvent, tag.Color)
		assert.Equal(t, entity.RuleNone, tag.AutoApplyRule)
	}
}

// Caso 5: el mismo nombre de evento reutiliza el tag existente.
func TestEvaluate_TagDeEvento_Reutiliza(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	other := &entity.Client{ID: uuid.New().String(), TenantID: testTenantID, Name: "Bo", CreatedAt: testNow}
	require.NoError(t, f.store.Clients().Create(ctx, other))

	_, err := f.eval.Evaluate(ctx, testTenantID, f.client.ID, autotag.EventContext{Type: autotag.EventWaiver, EventName: "Pop-up"})
	require.NoError(t, err)
	_, err = f.eval.Evaluate(ctx, testTenantID, other.ID, autotag.EventContext{Type: autotag.EventWaiver, EventName: "Pop-up"})
	require.NoError(t, err)

	a, err := f.store.Tags().GetByName(ctx, testTenantID, "Pop-up")
	require.NoError(t, err)
	require.NotNil(t, a)
	all, err := f.store.Tags().ListByTenant(ctx, testTenantID)
	require.NoError(t, err)
	assert.Len(t, all, 3, "New Client, Repeat Client y un único Pop-up")
}

// Caso 6: el consentimiento no actualiza la última visita.
func TestEvaluate_Waiver_NoMarcaVisita(t *testing.T) {
	f := newFixture(t)

	out, err := f.eval.Evaluate(context.Background(), testTenantID, f.client.ID, autotag.EventContext{Type: autotag.EventWaiver})
	require.NoError(t, err)

	assert.False(t, out.VisitStamped)
	assert.Equal(t, 0, out.CompletedSales)
	assert.Equal(t, []string{entity.DefaultNewClientTag}, names(out.Assigned), "0 ventas también es New Client")
	c, err := f.store.Clients().GetByID(context.Background(), testTenantID, f.client.ID)
	require.NoError(t, err)
	assert.Nil(t, c.LastVisitAt)
}

// ──────────────────────────────────────────────────────────────────────────────
// Siembra, validación y fallos
// ──────────────────────────────────────────────────────────────────────────────

func TestEnsureAutoTags_SiembraUnaSolaVez(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.eval.EnsureAutoTags(ctx, testTenantID)
	require.NoError(t, err)
	second, err := f.eval.EnsureAutoTags(ctx, testTenantID)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{entity.DefaultNewClientTag, entity.DefaultRepeatClientTag}, names(first))
	assert.ElementsMatch(t, names(first), names(second))
	all, err := f.store.Tags().ListByTenant(ctx, testTenantID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestEvaluate_TipoDeEventoInvalido(t *testing.T) {
	f := newFixture(t)
	_, err := f.eval.Evaluate(context.Background(), testTenantID, f.client.ID, autotag.EventContext{Type: "refund"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// failingUnassign envuelve el repositorio de tags y falla al retirar asignaciones.
type failingUnassign struct {
	*memory.TagRepo
}

var errStore = errors.New("store caído")

func (failingUnassign) Unassign(context.Context, string, string) (bool, error) {
	return false, errStore
}

// Caso 7: un fallo a mitad de camino se propaga y lo ya asignado permanece.
func TestEvaluate_FalloIntermedio_NoRevierte(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.completeSale(t)
	_, err := f.eval.Evaluate(ctx, testTenantID, f.client.ID, autotag.EventContext{Type: autotag.EventSale})
	require.NoError(t, err)
	f.completeSale(t)

	broken := autotag.NewEvaluator(f.store.Clients(), failingUnassign{f.store.Tags()}, f.store.Sales(), zerolog.Nop()).
		WithClock(func() time.Time { return testNow })
	_, err = broken.Evaluate(ctx, testTenantID, f.client.ID, autotag.EventContext{Type: autotag.EventSale})

	require.ErrorIs(t, err, errStore)
	assert.ElementsMatch(t, []string{entity.DefaultNewClientTag, entity.DefaultRepeatClientTag}, f.tagNames(t),
		"Repeat Client quedó asignado aunque el retiro de New Client falló")
}
