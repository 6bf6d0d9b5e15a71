package entity

import "time"

// Estados de suscripción (reflejo del proveedor de cobro).
const (
	SubscriptionActive     = "active"
	SubscriptionTrialing   = "trialing"
	SubscriptionPastDue    = "past_due"
	SubscriptionCanceled   = "canceled"
	SubscriptionIncomplete = "incomplete"
)

// Planes de suscripción.
const (
	TierStarter  = "starter"
	TierPro      = "pro"
	TierBusiness = "business"
)

// Tenant representa un negocio cliente de la plataforma (unidad de facturación, multi-tenant).
type Tenant struct {
	ID                 string
	Name               string
	SubscriptionStatus string
	SubscriptionTier   string
	TrialEndsAt        *time.Time
	IsSuspended        bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
