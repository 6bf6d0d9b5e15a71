package entity

// Tipos de sugerencia. Los de cliente alimentan el dashboard del tenant; los de tenant,
// el back-office de plataforma.
const (
	SuggestionBirthday      = "birthday"
	SuggestionLapsed        = "lapsed"
	SuggestionEventFollowUp = "event_follow_up"
	SuggestionNewLead       = "new_lead"

	SuggestionPastDue       = "past_due"
	SuggestionTrialExpiring = "trial_expiring"
	SuggestionInactive      = "inactive"
	SuggestionNewSignup     = "new_signup"
)

// Suggestion aviso accionable. Urgency menor = más urgente; solo se usa para ordenar.
// SubjectID es el ID del cliente o del tenant según el tipo.
type Suggestion struct {
	Type        string
	Urgency     int
	SubjectID   string
	SubjectName string
	Title       string
	Message     string
	Days        int // días hasta el evento o desde el último hecho relevante
}
