package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"rateio_pix/internal/domain/entities"
	"rateio_pix/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrUnknownCharge = errors.New("no payment intent for charge")
)

// Pagar.me event types this service settles on.
const (
	EventChargePaid     = "charge.paid"
	EventChargeRefunded = "charge.refunded"
	EventChargeFailed   = "charge.failed"
)

// Notification is the already-schema-checked provider callback.
// TransactionID may be empty; the charge id then doubles as the ledger key,
// which is what Pagar.me sends for Pix charges.

type Notification struct {
	Type          string
	ChargeID      string
	TransactionID string
	Amount        int64
}

// NotificationResult tells the webhook handler how to acknowledge.

type NotificationResult string

const (
	// NotificationApplied means state changed.
	NotificationApplied NotificationResult = "applied"
	// NotificationDuplicate means the event was already settled; replying 200
	// stops the provider from retrying a delivery that already took effect.
	NotificationDuplicate NotificationResult = "duplicate"
	// NotificationIgnored means the event type is not handled here. Also
	// acknowledged: a retry would not find a different handler.
	NotificationIgnored NotificationResult = "ignored"
)

// IWebhookUseCase is the single entry point for provider notifications.

type IWebhookUseCase interface {
	HandleNotification(ctx context.Context, n Notification) (NotificationResult, error)
}

// WebhookUseCase settles provider notifications against the ledger.
//
// Deliveries are at-least-once, possibly concurrent and out of order. Every
// write below goes through ISettlementLedger conditional transactions, so a
// replay converges to a no-op instead of double-counting.

type WebhookUseCase struct {
	intentRepo      interfaces.IPaymentIntentRepository
	participantRepo interfaces.IParticipantRepository
	rateioRepo      interfaces.IRateioRepository
	txRepo          interfaces.ITransactionRepository
	ledger          interfaces.ISettlementLedger
	progress        *ProgressCalculator
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(
	intentRepo interfaces.IPaymentIntentRepository,
	participantRepo interfaces.IParticipantRepository,
	rateioRepo interfaces.IRateioRepository,
	txRepo interfaces.ITransactionRepository,
	ledger interfaces.ISettlementLedger,
	progress *ProgressCalculator,
) *WebhookUseCase {
	return &WebhookUseCase{
		intentRepo:      intentRepo,
		participantRepo: participantRepo,
		rateioRepo:      rateioRepo,
		txRepo:          txRepo,
		ledger:          ledger,
		progress:        progress,
	}
}

func (u *WebhookUseCase) HandleNotification(ctx context.Context, n Notification) (NotificationResult, error) {
	switch n.Type {
	case EventChargePaid, EventChargeRefunded, EventChargeFailed:
	default:
		log.Printf("[webhook][usecase] unhandled event type=%s charge_id=%s", n.Type, n.ChargeID)
		return NotificationIgnored, nil
	}

	intent, err := u.intentRepo.GetByID(ctx, n.ChargeID)
	if err != nil {
		return "", err
	}
	if intent.ID == "" {
		log.Printf("[webhook][usecase] no intent for charge charge_id=%s type=%s", n.ChargeID, n.Type)
		return "", ErrUnknownCharge
	}

	participant, err := u.participantRepo.GetByID(ctx, intent.ParticipantID)
	if err != nil {
		return "", err
	}
	if participant.ID == "" {
		return "", ErrParticipantNotFound
	}

	rateio, err := u.rateioRepo.GetByID(ctx, participant.RateioID)
	if err != nil {
		return "", err
	}
	if rateio.ID == "" {
		return "", ErrRateioNotFound
	}

	switch n.Type {
	case EventChargePaid:
		return u.settlePaid(ctx, n, intent, participant, rateio)
	case EventChargeRefunded:
		return u.settleRefunded(ctx, n, participant, rateio)
	default:
		return u.settleFailed(ctx, n, participant, rateio)
	}
}

// settlePaid records the payment and, when the target is reached, completes
// the rateio. The ledger put is keyed by the provider transaction id, so the
// second delivery of the same event cannot append a second transaction; the
// completion is a compare-and-swap on the rateio status, so two concurrent
// payments for the same rateio complete it exactly once.
func (u *WebhookUseCase) settlePaid(ctx context.Context, n Notification, intent entities.PaymentIntent, participant entities.Participant, rateio entities.Rateio) (NotificationResult, error) {
	now := time.Now().UTC()
	tx := entities.Transaction{
		ID:            n.ledgerKey(),
		ParticipantID: participant.ID,
		RateioID:      rateio.ID,
		Amount:        n.Amount,
		Status:        entities.TransactionStatusPago,
		PaidAt:        now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	event := entities.RateioEvent{
		ID:            uuid.NewString(),
		RateioID:      rateio.ID,
		ParticipantID: participant.ID,
		EventType:     entities.EventTypePagamentoConfirmado,
		Message:       fmt.Sprintf("Pagamento de %s confirmado", formatBRL(n.Amount)),
		CreatedAt:     now,
	}

	applied, err := u.ledger.RecordPayment(ctx, tx, intent.ID, event)
	if err != nil {
		return "", err
	}
	if !applied {
		log.Printf("[webhook][usecase] duplicate paid notification tx_id=%s charge_id=%s", tx.ID, n.ChargeID)
		return NotificationDuplicate, nil
	}
	log.Printf("[webhook][usecase] payment recorded tx_id=%s participant_id=%s amount=%d", tx.ID, participant.ID, n.Amount)

	// The rateio_id-index read may not see the write committed above yet, so
	// the transaction is folded in explicitly. Without that, the final payment
	// could leave the rateio ATIVO forever: no later event re-evaluates it.
	progress, err := u.progress.ForRateioWith(ctx, rateio, tx)
	if err != nil {
		return "", err
	}
	if progress.IsPaid {
		completion := entities.RateioEvent{
			ID:        uuid.NewString(),
			RateioID:  rateio.ID,
			EventType: entities.EventTypeConcluido,
			Message:   "Rateio concluído! Liquidação automática iniciada.",
			CreatedAt: time.Now().UTC(),
		}
		completed, err := u.ledger.CompleteRateio(ctx, rateio.ID, completion)
		if err != nil {
			return "", err
		}
		if completed {
			log.Printf("[webhook][usecase] rateio completed rateio_id=%s paid=%d target=%d", rateio.ID, progress.PaidAmount, progress.TargetAmount)
		}
	}
	return NotificationApplied, nil
}

func (u *WebhookUseCase) settleRefunded(ctx context.Context, n Notification, participant entities.Participant, rateio entities.Rateio) (NotificationResult, error) {
	txID, err := u.resolveTransaction(ctx, n, participant)
	if err != nil {
		return "", err
	}

	event := entities.RateioEvent{
		ID:            uuid.NewString(),
		RateioID:      rateio.ID,
		ParticipantID: participant.ID,
		EventType:     entities.EventTypeReembolsoSolicitado,
		Message:       fmt.Sprintf("Reembolso de %s processado", formatBRL(n.Amount)),
		CreatedAt:     time.Now().UTC(),
	}
	applied, err := u.ledger.RecordRefund(ctx, txID, participant.ID, event)
	if err != nil {
		return "", err
	}
	if !applied {
		log.Printf("[webhook][usecase] duplicate refund notification tx_id=%s charge_id=%s", txID, n.ChargeID)
		return NotificationDuplicate, nil
	}
	log.Printf("[webhook][usecase] refund recorded tx_id=%s participant_id=%s", txID, participant.ID)
	return NotificationApplied, nil
}

// settleFailed leaves the participant PENDENTE so a new intent can be issued;
// only the pending transaction (when one exists) and the history change.
func (u *WebhookUseCase) settleFailed(ctx context.Context, n Notification, participant entities.Participant, rateio entities.Rateio) (NotificationResult, error) {
	tx, err := u.txRepo.GetByID(ctx, n.ledgerKey())
	if err != nil {
		return "", err
	}

	txID := ""
	if tx.ID != "" && tx.Status == entities.TransactionStatusPendente {
		txID = tx.ID
	}

	event := entities.RateioEvent{
		ID:            uuid.NewString(),
		RateioID:      rateio.ID,
		ParticipantID: participant.ID,
		EventType:     entities.EventTypePagamentoConfirmado,
		Message:       "Pagamento falhou. Tente novamente.",
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := u.ledger.RecordFailure(ctx, txID, event); err != nil {
		return "", err
	}
	log.Printf("[webhook][usecase] charge failed recorded participant_id=%s charge_id=%s", participant.ID, n.ChargeID)
	return NotificationApplied, nil
}

// resolveTransaction maps a refund notification to its ledger entry: by the
// provider transaction id when present, falling back to the participant's
// PAGO transaction for providers that omit it on refund events.
func (u *WebhookUseCase) resolveTransaction(ctx context.Context, n Notification, participant entities.Participant) (string, error) {
	tx, err := u.txRepo.GetByID(ctx, n.ledgerKey())
	if err != nil {
		return "", err
	}
	if tx.ID != "" {
		return tx.ID, nil
	}

	txs, err := u.txRepo.ListByRateio(ctx, participant.RateioID)
	if err != nil {
		return "", err
	}
	for _, t := range txs {
		if t.ParticipantID == participant.ID && t.Status == entities.TransactionStatusPago {
			return t.ID, nil
		}
	}
	return n.ledgerKey(), nil
}

func (n Notification) ledgerKey() string {
	if n.TransactionID != "" {
		return n.TransactionID
	}
	return n.ChargeID
}

func formatBRL(cents int64) string {
	return fmt.Sprintf("R$ %.2f", float64(cents)/100)
}
