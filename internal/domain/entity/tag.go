package entity

import "time"

// Reglas de auto-asignación de tags (deben coincidir con el CHECK de la tabla tags).
const (
	RuleNone         = "none"
	RuleNewClient    = "new_client"
	RuleRepeatClient = "repeat_client"
)

// Tags por defecto que se siembran la primera vez que un tenant no tiene tags automáticos.
const (
	DefaultNewClientTag    = "New Client"
	DefaultRepeatClientTag = "Repeat Client"
)

// Colores fijos de los tags sembrados y de los tags de evento.
const (
	ColorNewClient    = "#22C55E"
	ColorRepeatClient = "#3B82F6"
	ColorEvent        = "#A855F7"
	ColorDefault      = "#6B7280"
)

// ValidRule informa si rule es una regla de auto-asignación conocida.
func ValidRule(rule string) bool {
	switch rule {
	case RuleNone, RuleNewClient, RuleRepeatClient:
		return true
	}
	return false
}

// Tag etiqueta de clientes. Name es único por tenant y la comparación es exacta
// (sensible a mayúsculas y espacios).
type Tag struct {
	ID            string
	TenantID      string
	Name          string
	Color         string
	AutoApply     bool
	AutoApplyRule string // ver constantes Rule*
	CreatedAt     time.Time
}

// TagPatch actualización parcial de un tag.
type TagPatch struct {
	Name          *string
	Color         *string
	AutoApply     *bool
	AutoApplyRule *string
}

// Empty indica si el patch no contiene ninguna mutación.
func (p TagPatch) Empty() bool {
	return p.Name == nil && p.Color == nil && p.AutoApply == nil && p.AutoApplyRule == nil
}

// Apply aplica el patch sobre el tag.
func (p TagPatch) Apply(t *Tag) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Color != nil {
		t.Color = *p.Color
	}
	if p.AutoApply != nil {
		t.AutoApply = *p.AutoApply
	}
	if p.AutoApplyRule != nil {
		t.AutoApplyRule = *p.AutoApplyRule
	}
}

// TagAssignment relación muchos-a-muchos entre Client y Tag.
type TagAssignment struct {
	ClientID  string
	TagID     string
	CreatedAt time.Time
}
