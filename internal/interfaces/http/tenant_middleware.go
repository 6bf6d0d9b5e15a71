package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/sunstone-app/sunstone-api/internal/application/dto"
)

// tenantStatusChecker contrato mínimo para el middleware. Lo implementa *usecase.TenantUseCase.
type tenantStatusChecker interface {
	IsSuspended(ctx context.Context, tenantID string) (bool, error)
}

// RequireActiveTenant bloquea a los tenants suspendidos. Debe usarse DESPUÉS de
// AuthMiddleware y RequireTenant.
//
// Comportamiento:
//   - 403 TENANT_SUSPENDED → la plataforma suspendió la cuenta.
//   - 503 TENANT_CHECK_FAILED → fallo al consultar el tenant.
func RequireActiveTenant(checker tenantStatusChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		suspended, err := checker.IsSuspended(c.Context(), GetTenantID(c))
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "TENANT_CHECK_FAILED",
				Message: "no se pudo verificar la cuenta, intente más tarde",
			})
		}
		if suspended {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "TENANT_SUSPENDED",
				Message: "la cuenta está suspendida",
			})
		}
		return c.Next()
	}
}
