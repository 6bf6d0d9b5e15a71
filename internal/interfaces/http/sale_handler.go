package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sunstone-app/sunstone-api/internal/application/dto"
	"github.com/sunstone-app/sunstone-api/internal/application/usecase"
)

// SaleHandler registra ventas y consentimientos; ambos disparan el auto-tagging.
type SaleHandler struct {
	sales   *usecase.SaleUseCase
	waivers *usecase.WaiverUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(sales *usecase.SaleUseCase, waivers *usecase.WaiverUseCase) *SaleHandler {
	return &SaleHandler{sales: sales, waivers: waivers}
}

// CreateSale godoc
// @Summary      Registrar venta completada
// @Description  Guarda la venta y evalúa los tags automáticos del cliente. Si la evaluación
//
//	falla la venta queda guardada y se responde 500 AUTOTAG_FAILED.
//
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateSaleRequest  true  "client_id, total >= 0"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) CreateSale(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	out, err := h.sales.Create(c.Context(), GetTenantID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateWaiver godoc
// @Summary      Registrar consentimiento firmado
// @Description  event_name (opcional) crea o reutiliza un tag con ese nombre exacto.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateWaiverRequest  true  "client_id, event_name"
// @Success      201   {object}  dto.WaiverResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/waivers [post]
func (h *SaleHandler) CreateWaiver(c *fiber.Ctx) error {
	var in dto.CreateWaiverRequest
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	out, err := h.waivers.Create(c.Context(), GetTenantID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
