package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de venta. Solo las completadas cuentan para las reglas de tags.
const (
	SaleStatusPending   = "pending"
	SaleStatusCompleted = "completed"
	SaleStatusRefunded  = "refunded"
)

// Sale venta registrada en el punto de venta.
type Sale struct {
	ID        string
	TenantID  string
	ClientID  string
	Status    string
	Total     decimal.Decimal
	CreatedAt time.Time
}

// Waiver consentimiento firmado por un cliente (opcionalmente en un evento).
type Waiver struct {
	ID        string
	TenantID  string
	ClientID  string
	EventName string // vacío = sin evento
	SignedAt  time.Time
}
