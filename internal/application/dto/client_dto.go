package dto

import "time"

// BirthdayLayout formato de fecha de cumpleaños en la API.
const BirthdayLayout = "2006-01-02"

// CreateClientRequest body para POST /api/clients.
type CreateClientRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Birthday string `json:"birthday,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateClientRequest body para PATCH /api/clients/:id. Solo se modifican los campos presentes.
type UpdateClientRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone         *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Birthday      *string `json:"birthday,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ClearBirthday bool    `json:"clear_birthday,omitempty"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID          string        `json:"id"`
	TenantID    string        `json:"tenant_id"`
	Name        string        `json:"name"`
	Email       string        `json:"email,omitempty"`
	Phone       string        `json:"phone,omitempty"`
	Birthday    string        `json:"birthday,omitempty"`
	LastVisitAt *time.Time    `json:"last_visit_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	Tags        []TagResponse `json:"tags,omitempty"`
}
