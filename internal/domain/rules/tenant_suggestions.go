package rules

import (
	"time"

	"github.com/sunstone-app/sunstone-api/internal/domain/entity"
)

// TenantSuggestions evalúa las reglas de back-office sobre cada tenant no suspendido.
// Un tenant puede emitir varias sugerencias a la vez (no hay deduplicación).
func TenantSuggestions(t *entity.Tenant, now time.Time) []entity.Suggestion {
	if t.IsSuspended {
		return nil
	}
	var out []entity.Suggestion
	emit := func(kind, title, msg string, n int) {
		out = append(out, entity.Suggestion{
			Type:        kind,
			Urgency:     Urgency(kind),
			SubjectID:   t.ID,
			SubjectName: t.Name,
			Title:       title,
			Message:     msg,
			Days:        n,
		})
	}

	if t.SubscriptionStatus == entity.SubscriptionPastDue {
		emit(entity.SuggestionPastDue, t.Name+" is past due", "Subscription payment failed", 0)
	}

	if t.SubscriptionStatus == entity.SubscriptionTrialing && t.TrialEndsAt != nil {
		left := CeilDays(t.TrialEndsAt.Sub(now))
		if left > 0 && left <= TrialExpiringMaxDays {
			emit(entity.SuggestionTrialExpiring, t.Name+"'s trial is ending", "Trial ends in "+days(left), left)
		}
	}

	if (t.SubscriptionTier == entity.TierPro || t.SubscriptionTier == entity.TierBusiness) &&
		t.SubscriptionStatus == entity.SubscriptionActive {
		if idle := DaysSince(t.UpdatedAt, now); idle >= InactiveAfterDays {
			emit(entity.SuggestionInactive, t.Name+" has gone quiet", "No activity in "+days(idle), idle)
		}
	}

	if !t.CreatedAt.Before(now.Add(-NewSignupWindowHours * time.Hour)) {
		ago := HoursSince(t.CreatedAt, now) / 24
		msg := "Signed up " + days(ago) + " ago"
		switch ago {
		case 0:
			msg = "Signed up today"
		case 1:
			msg = "Signed up yesterday"
		}
		emit(entity.SuggestionNewSignup, "New signup: "+t.Name, msg, ago)
	}
	return out
}

// RankTenantSuggestions junta las sugerencias de todos los tenants, ordena por urgencia
// (estable) y trunca a limit.
func RankTenantSuggestions(tenants []*entity.Tenant, now time.Time, limit int) []entity.Suggestion {
	var all []entity.Suggestion
	for _, t := range tenants {
		all = append(all, TenantSuggestions(t, now)...)
	}
	if limit <= 0 {
		return []entity.Suggestion{}
	}
	sorted := sortByUrgency(all)
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
