package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"rateio_pix/internal/domain/entities"
	"rateio_pix/internal/usecase/interfaces"
)

var (
	ErrIntentNotFound       = errors.New("payment intent not found")
	ErrIntentStillOpen      = errors.New("participant already has an open payment intent")
	ErrParticipantNotPaid   = errors.New("participant has no confirmed payment")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
)

// Charges live for a fixed 15 minutes, matching the expires_in the gateway
// requests from Pagar.me.
const intentLifetime = 15 * time.Minute

// PaymentStatusView is the polled payment state for a participant. When the
// provider cannot be reached the stored state is still returned and
// GatewayIssue explains the missing live charge status.

type PaymentStatusView struct {
	ParticipantStatus entities.ParticipantStatus
	PaidAmount        int64
	IntentStatus      entities.IntentStatus
	ChargeStatus      string
	ExpiresAt         time.Time
	GatewayIssue      string
}

// IPaymentUseCase exposes charge issuance, polling and refunds.

type IPaymentUseCase interface {
	CreateIntent(ctx context.Context, participantID string) (entities.PaymentIntent, error)
	GetStatus(ctx context.Context, participantID string) (PaymentStatusView, error)
	Refund(ctx context.Context, actorID int64, participantID string, amountCents int64) (entities.RefundResult, error)
}

type PaymentUseCase struct {
	intentRepo      interfaces.IPaymentIntentRepository
	participantRepo interfaces.IParticipantRepository
	rateioRepo      interfaces.IRateioRepository
	gateway         interfaces.IChargeGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	intentRepo interfaces.IPaymentIntentRepository,
	participantRepo interfaces.IParticipantRepository,
	rateioRepo interfaces.IRateioRepository,
	gateway interfaces.IChargeGateway,
) *PaymentUseCase {
	return &PaymentUseCase{
		intentRepo:      intentRepo,
		participantRepo: participantRepo,
		rateioRepo:      rateioRepo,
		gateway:         gateway,
	}
}

// CreateIntent issues a Pix charge for the rateio's full total amount. Each
// participant is offered the whole total: the first contributions to cover
// the target complete the rateio; there is no per-head split.
func (u *PaymentUseCase) CreateIntent(ctx context.Context, participantID string) (entities.PaymentIntent, error) {
	participantID = strings.TrimSpace(participantID)
	if participantID == "" {
		return entities.PaymentIntent{}, ErrInvalidParticipantID
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured participant_id=%s", participantID)
		return entities.PaymentIntent{}, ErrGatewayNotConfigured
	}

	p, err := u.participantRepo.GetByID(ctx, participantID)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if p.ID == "" {
		return entities.PaymentIntent{}, ErrParticipantNotFound
	}

	r, err := u.rateioRepo.GetByID(ctx, p.RateioID)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if r.ID == "" {
		return entities.PaymentIntent{}, ErrRateioNotFound
	}
	if r.Status != entities.RateioStatusAtivo {
		return entities.PaymentIntent{}, ErrRateioNotActive
	}

	now := time.Now().UTC()
	if existing, err := u.intentRepo.GetLatestByParticipant(ctx, participantID); err != nil {
		return entities.PaymentIntent{}, err
	} else if existing.ID != "" && existing.EffectiveStatus(now) == entities.IntentStatusCriado {
		return entities.PaymentIntent{}, ErrIntentStillOpen
	}

	charge, err := u.gateway.CreateCharge(ctx, r.TotalAmount, fmt.Sprintf("Rateio: %s", r.Name))
	if err != nil {
		// Nothing was persisted, so the caller can simply retry.
		log.Printf("[payment][usecase] gateway create charge failed participant_id=%s err=%v", participantID, err)
		return entities.PaymentIntent{}, err
	}

	intent := entities.PaymentIntent{
		ID:            charge.ID,
		ParticipantID: participantID,
		QRCode:        charge.QRCode,
		CopyPaste:     charge.CopyPaste,
		Status:        entities.IntentStatusCriado,
		ExpiresAt:     now.Add(intentLifetime),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.intentRepo.Create(ctx, intent)
	if err != nil {
		log.Printf("[payment][usecase] intent persist failed participant_id=%s charge_id=%s err=%v", participantID, charge.ID, err)
		return entities.PaymentIntent{}, err
	}

	log.Printf("[payment][usecase] intent created participant_id=%s charge_id=%s amount=%d", participantID, charge.ID, r.TotalAmount)
	return created, nil
}

func (u *PaymentUseCase) GetStatus(ctx context.Context, participantID string) (PaymentStatusView, error) {
	participantID = strings.TrimSpace(participantID)
	if participantID == "" {
		return PaymentStatusView{}, ErrInvalidParticipantID
	}

	p, err := u.participantRepo.GetByID(ctx, participantID)
	if err != nil {
		return PaymentStatusView{}, err
	}
	if p.ID == "" {
		return PaymentStatusView{}, ErrParticipantNotFound
	}

	intent, err := u.intentRepo.GetLatestByParticipant(ctx, participantID)
	if err != nil {
		return PaymentStatusView{}, err
	}
	if intent.ID == "" {
		return PaymentStatusView{}, ErrIntentNotFound
	}

	view := PaymentStatusView{
		ParticipantStatus: p.Status,
		PaidAmount:        p.PaidAmount,
		IntentStatus:      intent.EffectiveStatus(time.Now().UTC()),
		ExpiresAt:         intent.ExpiresAt,
	}

	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured charge_id=%s", intent.ID)
		view.GatewayIssue = "Falha ao obter status do pagamento"
		return view, nil
	}
	charge, err := u.gateway.GetCharge(ctx, intent.ID)
	if err != nil {
		// Degrade to stored state; polling clients retry anyway.
		log.Printf("[payment][usecase] gateway get charge failed charge_id=%s err=%v", intent.ID, err)
		view.GatewayIssue = "Falha ao obter status do pagamento"
		return view, nil
	}
	view.ChargeStatus = charge.Status
	return view, nil
}

// Refund asks the provider to return a participant's payment. The participant
// is marked REEMBOLSADO as soon as the provider accepts the request, without
// waiting for the asynchronous confirmation webhook: the creator gets
// immediate feedback, at the cost of a transient inconsistency if the
// provider later reports the refund as failed.
func (u *PaymentUseCase) Refund(ctx context.Context, actorID int64, participantID string, amountCents int64) (entities.RefundResult, error) {
	participantID = strings.TrimSpace(participantID)
	if participantID == "" {
		return entities.RefundResult{}, ErrInvalidParticipantID
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured participant_id=%s", participantID)
		return entities.RefundResult{}, ErrGatewayNotConfigured
	}

	p, err := u.participantRepo.GetByID(ctx, participantID)
	if err != nil {
		return entities.RefundResult{}, err
	}
	if p.ID == "" {
		return entities.RefundResult{}, ErrParticipantNotFound
	}

	r, err := u.rateioRepo.GetByID(ctx, p.RateioID)
	if err != nil {
		return entities.RefundResult{}, err
	}
	if r.ID == "" {
		return entities.RefundResult{}, ErrRateioNotFound
	}
	if r.CreatorID != actorID {
		return entities.RefundResult{}, ErrNotCreator
	}
	if p.Status != entities.ParticipantStatusPago {
		return entities.RefundResult{}, ErrParticipantNotPaid
	}

	intent, err := u.intentRepo.GetLatestByParticipant(ctx, participantID)
	if err != nil {
		return entities.RefundResult{}, err
	}
	if intent.ID == "" {
		return entities.RefundResult{}, ErrIntentNotFound
	}

	result, err := u.gateway.RefundCharge(ctx, intent.ID, amountCents)
	if err != nil {
		// Participant stays PAGO; the creator can retry safely.
		log.Printf("[payment][usecase] gateway refund failed participant_id=%s charge_id=%s err=%v", participantID, intent.ID, err)
		return entities.RefundResult{}, err
	}

	if _, err := u.participantRepo.MarkRefunded(ctx, participantID); err != nil {
		log.Printf("[payment][usecase] mark refunded failed participant_id=%s err=%v", participantID, err)
		return entities.RefundResult{}, err
	}

	log.Printf("[payment][usecase] refund accepted participant_id=%s refund_id=%s status=%s", participantID, result.ID, result.Status)
	return result, nil
}
