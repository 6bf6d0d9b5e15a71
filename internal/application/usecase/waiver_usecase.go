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

// WaiverUseCase registra consentimientos firmados y dispara el auto-tagging.
type WaiverUseCase struct {
	waivers   repository.WaiverRepository
	clients   repository.ClientRepository
	evaluator TagEvaluator
	log       zerolog.Logger
	now       func() time.Time
}

// NewWaiverUseCase construye el caso de uso.
func NewWaiverUseCase(
	waivers repository.WaiverRepository,
	clients repository.ClientRepository,
	evaluator TagEvaluator,
	log zerolog.Logger,
) *WaiverUseCase {
	return &WaiverUseCase{
		waivers:   waivers,
		clients:   clients,
		evaluator: evaluator,
		log:       log.With().Str("component", "waivers").Logger(),
		now:       time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *WaiverUseCase) WithClock(now func() time.Time) *WaiverUseCase {
	uc.now = now
	return uc
}

// Create registra el consentimiento. EventName, si viene, se usa tal cual como nombre de tag.
func (uc *WaiverUseCase) Create(ctx context.Context, tenantID string, in dto.CreateWaiverRequest) (*dto.WaiverResponse, error) {
	client, err := uc.clients.GetByID(ctx, tenantID, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("cliente %s: %w", in.ClientID, domain.ErrNotFound)
	}
	waiver := &entity.Waiver{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		ClientID:  client.ID,
		EventName: in.EventName,
		SignedAt:  uc.now(),
	}
	if err := uc.waivers.Create(ctx, waiver); err != nil {
		return nil, err
	}
	uc.log.Info().Str("tenant_id", tenantID).Str("client_id", client.ID).
		Str("event_name", waiver.EventName).Msg("consentimiento registrado")

	out, err := uc.evaluator.Evaluate(ctx, tenantID, client.ID, autotag.EventContext{
		Type:      autotag.EventWaiver,
		EventName: waiver.EventName,
	})
	if err != nil {
		uc.log.Error().Err(err).Str("tenant_id", tenantID).Str("waiver_id", waiver.ID).
			Msg("auto-tagging tras consentimiento falló")
		return nil, &EvaluationError{RecordID: waiver.ID, Err: err}
	}
	return &dto.WaiverResponse{
		ID:        waiver.ID,
		ClientID:  waiver.ClientID,
		EventName: waiver.EventName,
		SignedAt:  waiver.SignedAt,
		AutoTag:   toAutoTagResult(out),
	}, nil
}
