package rules_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunstone-app/sunstone-api/internal/domain/entity"
	"github.com/sunstone-app/sunstone-api/internal/domain/rules"
)

var testNow = time.Date(2026, time.May, 20, 10, 0, 0, 0, time.UTC)

func clientWithBirthdayIn(id string, n int) *entity.Client {
	b := testNow.AddDate(-30, 0, n)
	return &entity.Client{ID: id, Name: id, Birthday: &b, CreatedAt: testNow.AddDate(-1, 0, 0)}
}

// Caso 1: límite exacto de la ventana de cumpleaños (14 sí, 15 no).
func TestBirthdaySuggestion_LimiteDeVentana(t *testing.T) {
	s, ok := rules.BirthdaySuggestion(clientWithBirthdayIn("c14", 14), testNow)
	require.True(t, ok, "a 14 días debe emitir")
	assert.Equal(t, 14, s.Days)
	assert.Equal(t, 0, s.Urgency)
	assert.Equal(t, "Birthday in 14 days", s.Message)

	_, ok = rules.BirthdaySuggestion(clientWithBirthdayIn("c15", 15), testNow)
	assert.False(t, ok, "a 15 días no debe emitir")
}

func TestBirthdaySuggestion_SinCumpleanios(t *testing.T) {
	_, ok := rules.BirthdaySuggestion(&entity.Client{ID: "x"}, testNow)
	assert.False(t, ok)
}

func TestBirthdaySuggestion_HoyYManiana(t *testing.T) {
	s, ok := rules.BirthdaySuggestion(clientWithBirthdayIn("hoy", 0), testNow)
	require.True(t, ok)
	assert.Equal(t, "Birthday is today", s.Message)

	s, ok = rules.BirthdaySuggestion(clientWithBirthdayIn("manana", 1), testNow)
	require.True(t, ok)
	assert.Equal(t, "Birthday is tomorrow", s.Message)
}

func TestLapsedSuggestion(t *testing.T) {
	last := testNow.AddDate(0, 0, -95)
	s, ok := rules.LapsedSuggestion(&entity.Client{ID: "b", Name: "Bea", LastVisitAt: &last}, testNow)
	require.True(t, ok)
	assert.Equal(t, entity.SuggestionLapsed, s.Type)
	assert.Equal(t, 95, s.Days)
	assert.Contains(t, s.Message, "95 days")

	exactly := testNow.AddDate(0, 0, -90)
	_, ok = rules.LapsedSuggestion(&entity.Client{ID: "c", LastVisitAt: &exactly}, testNow)
	assert.False(t, ok, "exactamente 90 días no es 'más de 90'")

	_, ok = rules.LapsedSuggestion(&entity.Client{ID: "d"}, testNow)
	assert.False(t, ok, "sin visitas registradas no aplica")
}

func TestLapsedSuggestion_FormateaMiles(t *testing.T) {
	last := testNow.AddDate(0, 0, -1500)
	s, ok := rules.LapsedSuggestion(&entity.Client{ID: "old", LastVisitAt: &last}, testNow)
	require.True(t, ok)
	assert.Equal(t, "Last visit was 1,500 days ago", s.Message)
}

func TestNewLeadSuggestion(t *testing.T) {
	c := &entity.Client{ID: "c", Name: "Cleo", CreatedAt: testNow.AddDate(0, 0, -2)}

	s, ok := rules.NewLeadSuggestion(c, 0, testNow)
	require.True(t, ok)
	assert.Equal(t, 3, s.Urgency)

	_, ok = rules.NewLeadSuggestion(c, 1, testNow)
	assert.False(t, ok, "con una venta completada ya no es lead")

	old := &entity.Client{ID: "o", CreatedAt: testNow.AddDate(0, 0, -8)}
	_, ok = rules.NewLeadSuggestion(old, 0, testNow)
	assert.False(t, ok)
}

// Un cliente que califica para varias reglas conserva solo la más urgente.
func TestRankClientSuggestions_DeduplicaPorCliente(t *testing.T) {
	in := []entity.Suggestion{
		{Type: entity.SuggestionNewLead, Urgency: 3, SubjectID: "a"},
		{Type: entity.SuggestionLapsed, Urgency: 1, SubjectID: "b"},
		{Type: entity.SuggestionBirthday, Urgency: 0, SubjectID: "a"},
		{Type: entity.SuggestionNewLead, Urgency: 3, SubjectID: "b"},
	}
	out := rules.RankClientSuggestions(in, rules.MaxClientSuggestions)

	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].SubjectID)
	assert.Equal(t, entity.SuggestionBirthday, out[0].Type)
	assert.Equal(t, "b", out[1].SubjectID)
	assert.Equal(t, entity.SuggestionLapsed, out[1].Type)
}

func TestRankClientSuggestions_EstableYTruncado(t *testing.T) {
	var in []entity.Suggestion
	for _, id := range []string{"1", "2", "3", "4", "5", "6", "7", "8"} {
		in = append(in, entity.Suggestion{Type: entity.SuggestionLapsed, Urgency: 1, SubjectID: id})
	}
	out := rules.RankClientSuggestions(in, rules.MaxClientSuggestions)

	require.Len(t, out, 6)
	for i, s := range out {
		assert.Equal(t, in[i].SubjectID, s.SubjectID, "el orden de entrada se conserva ante empates")
	}
}

func TestRankClientSuggestions_LimiteCero(t *testing.T) {
	candidates := []entity.Suggestion{
		{Type: entity.SuggestionLapsed, Urgency: 1, SubjectID: "a"},
		{Type: entity.SuggestionNewLead, Urgency: 3, SubjectID: "b"},
	}
	for _, limit := range []int{0, -1} {
		got := rules.RankClientSuggestions(candidates, limit)
		assert.NotNil(t, got)
		assert.Empty(t, got, "limit %d", limit)
	}
}
