package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sunstone-app/sunstone-api/internal/application/suggestion"
	"github.com/sunstone-app/sunstone-api/internal/application/usecase"
	"github.com/sunstone-app/sunstone-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClientUC     *usecase.ClientUseCase
	TagUC        *usecase.TagUseCase
	SaleUC       *usecase.SaleUseCase
	WaiverUC     *usecase.WaiverUseCase
	TenantUC     *usecase.TenantUseCase
	ClientRanker *suggestion.ClientRanker
	AdminRanker  *suggestion.AdminRanker
	JWTSecret    string
}

// Router registra las rutas de la API. Todo /api exige Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	suggestionHandler := NewSuggestionHandler(deps.ClientRanker, deps.AdminRanker, deps.TenantUC)

	// Back-office de plataforma
	admin := api.Group("/admin", RequireRole(entity.RolePlatformAdmin))
	admin.Get("/suggestions", suggestionHandler.AdminSuggestions)
	admin.Get("/tenants", suggestionHandler.Tenants)

	// Rutas de la joyería (token atado a un tenant activo). El grupo comparte prefijo con /admin,
	// por eso /admin se registra antes.
	shop := api.Group("",
		RequireRole(entity.RoleOwner, entity.RoleStaff),
		RequireTenant(),
		RequireActiveTenant(deps.TenantUC),
	)

	clientHandler := NewClientHandler(deps.ClientUC)
	tagHandler := NewTagHandler(deps.TagUC)
	shop.Post("/clients", clientHandler.Create)
	shop.Get("/clients", clientHandler.List)
	shop.Get("/clients/:id", clientHandler.GetByID)
	shop.Patch("/clients/:id", clientHandler.Update)
	shop.Delete("/clients/:id", clientHandler.Delete)
	shop.Post("/clients/:id/tags/:tagId", tagHandler.Assign)
	shop.Delete("/clients/:id/tags/:tagId", tagHandler.Unassign)

	// Solo el dueño configura tags
	shop.Get("/tags", tagHandler.List)
	shop.Post("/tags", RequireRole(entity.RoleOwner), tagHandler.Create)
	shop.Patch("/tags/:id", RequireRole(entity.RoleOwner), tagHandler.Update)
	shop.Delete("/tags/:id", RequireRole(entity.RoleOwner), tagHandler.Delete)

	saleHandler := NewSaleHandler(deps.SaleUC, deps.WaiverUC)
	shop.Post("/sales", saleHandler.CreateSale)
	shop.Post("/waivers", saleHandler.CreateWaiver)

	shop.Get("/suggestions", suggestionHandler.ClientSuggestions)
}
