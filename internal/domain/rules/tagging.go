// Package rules contiene las reglas de negocio puras (sin I/O) del auto-tagging y de las
// sugerencias del dashboard. Todas reciben "now" explícito.
package rules

import "github.com/sunstone-app/sunstone-api/internal/domain/entity"

// RepeatClientThreshold ventas completadas a partir de las cuales un cliente es recurrente.
const RepeatClientThreshold = 2

// MatchesRule informa si una regla de auto-asignación coincide con el número de ventas
// completadas del cliente. new_client y repeat_client son excluyentes por construcción.
func MatchesRule(rule string, completedSales int) bool {
	switch rule {
	case entity.RuleNewClient:
		return completedSales < RepeatClientThreshold
	case entity.RuleRepeatClient:
		return completedSales >= RepeatClientThreshold
	default:
		return false
	}
}

// IsRepeatClient atajo para la única regla negativa: al pasar a recurrente se retira New Client.
func IsRepeatClient(completedSales int) bool {
	return completedSales >= RepeatClientThreshold
}

// DefaultAutoTags tags automáticos sembrados cuando el tenant no tiene ninguno.
func DefaultAutoTags() []entity.Tag {
	return []entity.Tag{
		{Name: entity.DefaultNewClientTag, Color: entity.ColorNewClient, AutoApply: true, AutoApplyRule: entity.RuleNewClient},
		{Name: entity.DefaultRepeatClientTag, Color: entity.ColorRepeatClient, AutoApply: true, AutoApplyRule: entity.RuleRepeatClient},
	}
}
