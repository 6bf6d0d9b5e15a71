package dto

import "time"

// SuggestionDTO aviso accionable del dashboard. SubjectID es un cliente o un tenant
// según el tipo.
type SuggestionDTO struct {
	Type        string `json:"type"`
	Urgency     int    `json:"urgency"`
	SubjectID   string `json:"subject_id"`
	SubjectName string `json:"subject_name"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	Days        int    `json:"days"`
}

// SuggestionListResponse respuesta de GET /api/suggestions y /api/admin/suggestions.
type SuggestionListResponse struct {
	Total       int             `json:"total"`
	Suggestions []SuggestionDTO `json:"suggestions"`
}

// TenantResponse tenant en el back-office.
type TenantResponse struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	SubscriptionStatus string     `json:"subscription_status"`
	SubscriptionTier   string     `json:"subscription_tier"`
	TrialEndsAt        *time.Time `json:"trial_ends_at,omitempty"`
	IsSuspended        bool       `json:"is_suspended"`
	CreatedAt          time.Time  `json:"created_at"`
}
