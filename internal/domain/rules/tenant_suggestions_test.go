package rules_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunstone-app/sunstone-api/internal/domain/entity"
	"github.com/sunstone-app/sunstone-api/internal/domain/rules"
)

func tenant(id string) *entity.Tenant {
	return &entity.Tenant{
		ID:                 id,
		Name:               id,
		SubscriptionStatus: entity.SubscriptionActive,
		SubscriptionTier:   entity.TierStarter,
		CreatedAt:          testNow.AddDate(-1, 0, 0),
		UpdatedAt:          testNow,
	}
}

func types(list []entity.Suggestion) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.Type)
	}
	return out
}

func TestTenantSuggestions_PastDue(t *testing.T) {
	tn := tenant("t1")
	tn.SubscriptionStatus = entity.SubscriptionPastDue

	out := rules.TenantSuggestions(tn, testNow)
	require.Len(t, out, 1)
	assert.Equal(t, entity.SuggestionPastDue, out[0].Type)
	assert.Equal(t, 1, out[0].Urgency)
}

func TestTenantSuggestions_TrialExpiring(t *testing.T) {
	cases := []struct {
		name  string
		delta time.Duration
		emit  bool
		days  int
	}{
		{"vence en una hora", time.Hour, true, 1},
		{"exactamente 7 días", 7 * 24 * time.Hour, true, 7},
		{"7 días y un milisegundo", 7*24*time.Hour + time.Millisecond, false, 0},
		{"ya vencido", -time.Minute, false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tn := tenant("trial")
			tn.SubscriptionStatus = entity.SubscriptionTrialing
			ends := testNow.Add(tc.delta)
			tn.TrialEndsAt = &ends

			out := rules.TenantSuggestions(tn, testNow)
			if !tc.emit {
				assert.NotContains(t, types(out), entity.SuggestionTrialExpiring)
				return
			}
			require.Len(t, out, 1)
			assert.Equal(t, entity.SuggestionTrialExpiring, out[0].Type)
			assert.Equal(t, tc.days, out[0].Days)
		})
	}
}

func TestTenantSuggestions_Inactive(t *testing.T) {
	tn := tenant("pro")
	tn.SubscriptionTier = entity.TierPro
	tn.UpdatedAt = testNow.AddDate(0, 0, -14)
	assert.Equal(t, []string{entity.SuggestionInactive}, types(rules.TenantSuggestions(tn, testNow)))

	tn.UpdatedAt = testNow.AddDate(0, 0, -13)
	assert.Empty(t, rules.TenantSuggestions(tn, testNow), "13 días aún no es inactivo")

	starter := tenant("starter")
	starter.UpdatedAt = testNow.AddDate(0, 0, -60)
	assert.Empty(t, rules.TenantSuggestions(starter, testNow), "el plan starter no se vigila")
}

func TestTenantSuggestions_NewSignupMensajes(t *testing.T) {
	cases := []struct {
		ago time.Duration
		msg string
	}{
		{3 * time.Hour, "Signed up today"},
		{30 * time.Hour, "Signed up yesterday"},
		{100 * time.Hour, "Signed up 4 days ago"},
	}
	for _, tc := range cases {
		tn := tenant("new")
		tn.CreatedAt = testNow.Add(-tc.ago)
		out := rules.TenantSuggestions(tn, testNow)
		require.Len(t, out, 1)
		assert.Equal(t, entity.SuggestionNewSignup, out[0].Type)
		assert.Equal(t, tc.msg, out[0].Message)
	}

	tn := tenant("old")
	tn.CreatedAt = testNow.Add(-169 * time.Hour)
	assert.Empty(t, rules.TenantSuggestions(tn, testNow))
}

func TestTenantSuggestions_SuspendidoExcluido(t *testing.T) {
	tn := tenant("s")
	tn.SubscriptionStatus = entity.SubscriptionPastDue
	tn.IsSuspended = true
	assert.Empty(t, rules.TenantSuggestions(tn, testNow))
}

// Un mismo tenant puede aparecer varias veces; el orden es por urgencia y se trunca a 8.
func TestRankTenantSuggestions_OrdenYLimite(t *testing.T) {
	multi := tenant("multi")
	multi.SubscriptionStatus = entity.SubscriptionPastDue
	multi.CreatedAt = testNow.Add(-2 * time.Hour)

	var tenants []*entity.Tenant
	tenants = append(tenants, multi)
	for i := 0; i < 10; i++ {
		tn := tenant("signup")
		tn.CreatedAt = testNow.Add(-time.Duration(i+1) * time.Hour)
		tenants = append(tenants, tn)
	}

	out := rules.RankTenantSuggestions(tenants, testNow, rules.MaxTenantSuggestions)
	require.Len(t, out, 8)
	assert.Equal(t, entity.SuggestionPastDue, out[0].Type)
	assert.Equal(t, "multi", out[0].SubjectID)
	assert.Equal(t, entity.SuggestionNewSignup, out[1].Type)
	assert.Equal(t, "multi", out[1].SubjectID, "a igual urgencia se respeta el orden de entrada")
}

func TestRankTenantSuggestions_LimiteCero(t *testing.T) {
	pastDue := tenant("t1")
	pastDue.SubscriptionStatus = entity.SubscriptionPastDue
	got := rules.RankTenantSuggestions([]*entity.Tenant{pastDue}, testNow, 0)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
