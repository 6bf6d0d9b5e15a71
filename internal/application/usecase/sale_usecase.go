package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sunstone-app/sunstone-api/internal/application/autotag"
	"github.com/sunstone-app/sunstone-api/internal/application/dto"
	"github.com/sunstone-app/sunstone-api/internal/domain"
	"github.com/sunstone-app/sunstone-api/internal/domain/entity"
	"github.com/sunstone-app/sunstone-api/internal/domain/repository"
)

// SaleTxRunner ejecuta el registro de la venta dentro de una transacción.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(sales repository.SaleRepository, clients repository.ClientRepository) error) error
}

// TagEvaluator evalúa el auto-tagging de un cliente tras un evento (autotag.Evaluator).
type TagEvaluator interface {
	Evaluate(ctx context.Context, tenantID, clientID string, ev autotag.EventContext) (*autotag.Outcome, error)
}

// EvaluationError la venta o el consentimiento quedó registrado pero el auto-tagging falló.
type EvaluationError struct {
	RecordID string
	Err      error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("registro %s guardado; auto-tagging falló: %v", e.RecordID, e.Err)
}

func (e *EvaluationError) Unwrap() error { return e.Err }

// SaleUseCase registra ventas completadas y dispara el auto-tagging.
type SaleUseCase struct {
	tx        SaleTxRunner
	evaluator TagEvaluator
	log       zerolog.Logger
	now       func() time.Time
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(tx SaleTxRunner, evaluator TagEvaluator, log zerolog.Logger) *SaleUseCase {
	return &SaleUseCase{
		tx:        tx,
		evaluator: evaluator,
		log:       log.With().Str("component", "sales").Logger(),
		now:       time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *SaleUseCase) WithClock(now func() time.Time) *SaleUseCase {
	uc.now = now
	return uc
}

// Create registra una venta completada y evalúa los tags del cliente.
// Si la evaluación falla la venta ya quedó guardada y se devuelve *EvaluationError.
func (uc *SaleUseCase) Create(ctx context.Context, tenantID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.Total.IsNegative() {
		return nil, fmt.Errorf("%w: total negativo", domain.ErrInvalidInput)
	}
	sale := &entity.Sale{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		ClientID:  in.ClientID,
		Status:    entity.SaleStatusCompleted,
		Total:     in.Total,
		CreatedAt: uc.now(),
	}
	err := uc.tx.RunSale(ctx, func(sales repository.SaleRepository, clients repository.ClientRepository) error {
		client, err := clients.GetByID(ctx, tenantID, in.ClientID)
		if err != nil {
			return err
		}
		if client == nil {
			return fmt.Errorf("cliente %s: %w", in.ClientID, domain.ErrNotFound)
		}
		return sales.Create(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("tenant_id", tenantID).Str("client_id", sale.ClientID).
		Str("sale_id", sale.ID).Str("total", sale.Total.String()).Msg("venta registrada")

	out, err := uc.evaluator.Evaluate(ctx, tenantID, sale.ClientID, autotag.EventContext{Type: autotag.EventSale})
	if err != nil {
		uc.log.Error().Err(err).Str("tenant_id", tenantID).Str("sale_id", sale.ID).
			Msg("auto-tagging tras venta falló")
		return nil, &EvaluationError{RecordID: sale.ID, Err: err}
	}
	return &dto.SaleResponse{
		ID:        sale.ID,
		ClientID:  sale.ClientID,
		Status:    sale.Status,
		Total:     sale.Total,
		CreatedAt: sale.CreatedAt,
		AutoTag:   toAutoTagResult(out),
	}, nil
}
