package rules

import (
	"sort"
	"time"

	"github.com/sunstone-app/sunstone-api/internal/domain/entity"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Umbrales de las sugerencias de clientes.
const (
	BirthdayWindowDays   = 14
	LapsedAfterDays      = 90
	LapsedCandidates     = 10
	NewLeadWindowDays    = 7
	NewLeadCandidates    = 10
	MaxClientSuggestions = 6
	MaxTenantSuggestions = 8
	NewSignupWindowHours = 7 * 24
	InactiveAfterDays    = 14
	TrialExpiringMaxDays = 7
)

// Urgencias fijas por tipo (menor = más urgente).
var urgencyByType = map[string]int{
	entity.SuggestionBirthday:      0,
	entity.SuggestionLapsed:        1,
	entity.SuggestionEventFollowUp: 2,
	entity.SuggestionNewLead:       3,
	entity.SuggestionPastDue:       1,
	entity.SuggestionTrialExpiring: 2,
	entity.SuggestionInactive:      3,
	entity.SuggestionNewSignup:     4,
}

// Urgency devuelve la urgencia del tipo de sugerencia.
func Urgency(suggestionType string) int {
	return urgencyByType[suggestionType]
}

var printer = message.NewPrinter(language.English)

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return printer.Sprintf("%d days", n)
}

// BirthdaySuggestion emite la sugerencia si el próximo cumpleaños cae dentro de los
// próximos 14 días (0 y 14 incluidos).
func BirthdaySuggestion(c *entity.Client, now time.Time) (entity.Suggestion, bool) {
	if c.Birthday == nil {
		return entity.Suggestion{}, false
	}
	_, n := NextBirthday(*c.Birthday, now)
	if n < 0 || n > BirthdayWindowDays {
		return entity.Suggestion{}, false
	}
	msg := "Birthday in " + days(n)
	switch n {
	case 0:
		msg = "Birthday is today"
	case 1:
		msg = "Birthday is tomorrow"
	}
	return entity.Suggestion{
		Type:        entity.SuggestionBirthday,
		Urgency:     Urgency(entity.SuggestionBirthday),
		SubjectID:   c.ID,
		SubjectName: c.Name,
		Title:       c.Name + "'s birthday",
		Message:     msg,
		Days:        n,
	}, true
}

// LapsedSuggestion emite la sugerencia si la última visita fue hace más de 90 días.
func LapsedSuggestion(c *entity.Client, now time.Time) (entity.Suggestion, bool) {
	if c.LastVisitAt == nil || now.Sub(*c.LastVisitAt) <= LapsedAfterDays*day {
		return entity.Suggestion{}, false
	}
	n := DaysSince(*c.LastVisitAt, now)
	return entity.Suggestion{
		Type:        entity.SuggestionLapsed,
		Urgency:     Urgency(entity.SuggestionLapsed),
		SubjectID:   c.ID,
		SubjectName: c.Name,
		Title:       "Reconnect with " + c.Name,
		Message:     "Last visit was " + days(n) + " ago",
		Days:        n,
	}, true
}

// NewLeadSuggestion emite la sugerencia para clientes creados en los últimos 7 días
// que aún no tienen ventas completadas.
func NewLeadSuggestion(c *entity.Client, completedSales int, now time.Time) (entity.Suggestion, bool) {
	if completedSales > 0 || c.CreatedAt.Before(now.Add(-NewLeadWindowDays*day)) {
		return entity.Suggestion{}, false
	}
	n := DaysSince(c.CreatedAt, now)
	return entity.Suggestion{
		Type:        entity.SuggestionNewLead,
		Urgency:     Urgency(entity.SuggestionNewLead),
		SubjectID:   c.ID,
		SubjectName: c.Name,
		Title:       "Follow up with " + c.Name,
		Message:     "New lead without a purchase yet",
		Days:        n,
	}, true
}

// RankClientSuggestions ordena por urgencia (estable), deja una sola sugerencia por cliente
// (la primera vista tras ordenar, es decir la más urgente) y trunca a limit.
// limit <= 0 devuelve una lista vacía.
func RankClientSuggestions(candidates []entity.Suggestion, limit int) []entity.Suggestion {
	if limit <= 0 {
		return []entity.Suggestion{}
	}
	sorted := sortByUrgency(candidates)
	seen := make(map[string]struct{}, len(sorted))
	out := make([]entity.Suggestion, 0, min(len(sorted), limit))
	for _, s := range sorted {
		if _, dup := seen[s.SubjectID]; dup {
			continue
		}
		seen[s.SubjectID] = struct{}{}
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}
	return out
}

func sortByUrgency(in []entity.Suggestion) []entity.Suggestion {
	out := make([]entity.Suggestion, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Urgency < out[j].Urgency
	})
	return out
}
