package dto

// CreateTagRequest body para POST /api/tags.
type CreateTagRequest struct {
	Name          string `json:"name" validate:"required,max=60"`
	Color         string `json:"color,omitempty" validate:"omitempty,hexcolor"`
	AutoApply     bool   `json:"auto_apply"`
	AutoApplyRule string `json:"auto_apply_rule,omitempty" validate:"omitempty,oneof=none new_client repeat_client"`
}

// UpdateTagRequest body para PATCH /api/tags/:id.
type UpdateTagRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1,max=60"`
	Color         *string `json:"color,omitempty" validate:"omitempty,hexcolor"`
	AutoApply     *bool   `json:"auto_apply,omitempty"`
	AutoApplyRule *string `json:"auto_apply_rule,omitempty" validate:"omitempty,oneof=none new_client repeat_client"`
}

// TagResponse tag en respuestas.
type TagResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Color         string `json:"color"`
	AutoApply     bool   `json:"auto_apply"`
	AutoApplyRule string `json:"auto_apply_rule"`
}
