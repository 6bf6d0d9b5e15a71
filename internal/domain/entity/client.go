package entity

import "time"

// Client representa un cliente de la joyería (pertenece a un Tenant).
type Client struct {
	ID          string
	TenantID    string
	Name        string
	Email       string
	Phone       string
	Birthday    *time.Time // solo importan mes y día; nil = sin cumpleaños registrado
	LastVisitAt *time.Time // se actualiza al completar una venta
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ClientPatch actualización parcial de un cliente: cada campo no nil es una mutación.
// ClearBirthday elimina el cumpleaños (Birthday nil no lo toca).
type ClientPatch struct {
	Name          *string
	Email         *string
	Phone         *string
	Birthday      *time.Time
	ClearBirthday bool
}

// Empty indica si el patch no contiene ninguna mutación.
func (p ClientPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil && p.Birthday == nil && !p.ClearBirthday
}

// Apply aplica el patch sobre el cliente, un campo a la vez.
func (p ClientPatch) Apply(c *Client, now time.Time) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.ClearBirthday {
		c.Birthday = nil
	} else if p.Birthday != nil {
		b := *p.Birthday
		c.Birthday = &b
	}
	c.UpdatedAt = now
}
