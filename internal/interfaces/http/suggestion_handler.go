package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sunstone-app/sunstone-api/internal/application/dto"
	"github.com/sunstone-app/sunstone-api/internal/application/suggestion"
	"github.com/sunstone-app/sunstone-api/internal/application/usecase"
)

// SuggestionHandler dashboards: sugerencias de clientes (tenant) y de tenants (plataforma).
type SuggestionHandler struct {
	clients *suggestion.ClientRanker
	admin   *suggestion.AdminRanker
	tenants *usecase.TenantUseCase
}

// NewSuggestionHandler construye el handler.
func NewSuggestionHandler(clients *suggestion.ClientRanker, admin *suggestion.AdminRanker, tenants *usecase.TenantUseCase) *SuggestionHandler {
	return &SuggestionHandler{clients: clients, admin: admin, tenants: tenants}
}

// ClientSuggestions godoc
// @Summary      Sugerencias de clientes
// @Description  Hasta 6: cumpleaños próximos, clientes sin visita en 90 días, leads sin compra.
// @Tags         suggestions
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuggestionListResponse
// @Router       /api/suggestions [get]
func (h *SuggestionHandler) ClientSuggestions(c *fiber.Ctx) error {
	out, err := h.clients.List(c.Context(), GetTenantID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AdminSuggestions godoc
// @Summary      Sugerencias de back-office
// @Description  Hasta 8 sobre tenants no suspendidos: pagos fallidos, trials por vencer,
//
//	cuentas pagas inactivas y altas recientes.
//
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuggestionListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/suggestions [get]
func (h *SuggestionHandler) AdminSuggestions(c *fiber.Ctx) error {
	out, err := h.admin.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Tenants godoc
// @Summary      Listar tenants
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máx. 100 (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/tenants [get]
func (h *SuggestionHandler) Tenants(c *fiber.Ctx) error {
	var page dto.PageRequest
	if ok, err := bindQuery(c, &page); !ok {
		return err
	}
	items, meta, err := h.tenants.List(c.Context(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"items": items, "page": meta})
}
