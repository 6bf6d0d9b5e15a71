package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest body para POST /api/sales. Registra una venta completada.
type CreateSaleRequest struct {
	ClientID string          `json:"client_id" validate:"required,uuid"`
	Total    decimal.Decimal `json:"total"`
}

// SaleResponse venta registrada más el resultado del auto-tagging.
type SaleResponse struct {
	ID        string          `json:"id"`
	ClientID  string          `json:"client_id"`
	Status    string          `json:"status"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	AutoTag   AutoTagResult   `json:"auto_tag"`
}

// CreateWaiverRequest body para POST /api/waivers.
// EventName se usa tal cual como nombre de tag (sin normalizar).
type CreateWaiverRequest struct {
	ClientID  string `json:"client_id" validate:"required,uuid"`
	EventName string `json:"event_name,omitempty" validate:"max=120"`
}

// WaiverResponse consentimiento registrado más el resultado del auto-tagging.
type WaiverResponse struct {
	ID        string        `json:"id"`
	ClientID  string        `json:"client_id"`
	EventName string        `json:"event_name,omitempty"`
	SignedAt  time.Time     `json:"signed_at"`
	AutoTag   AutoTagResult `json:"auto_tag"`
}

// AutoTagResult mutaciones de tags aplicadas por el evaluador.
type AutoTagResult struct {
	CompletedSales int           `json:"completed_sales"`
	Assigned       []TagResponse `json:"assigned"`
	Removed        []TagResponse `json:"removed"`
	VisitStamped   bool          `json:"visit_stamped"`
}
