package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"rateio_pix/internal/domain/entities"
	"rateio_pix/internal/domain/pix"
	"rateio_pix/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrParticipantNotFound  = errors.New("participant not found")
	ErrInvalidParticipantID = errors.New("invalid participant id")
	ErrInvalidPixKey        = errors.New("invalid pix key")
)

// IParticipantUseCase exposes participation operations. Participants join in
// PENDENTE; only confirmed provider notifications move them forward.

type IParticipantUseCase interface {
	Create(ctx context.Context, rateioID, pixKey string, autoRefund bool) (entities.Participant, error)
	GetByID(ctx context.Context, id string) (entities.Participant, error)
	// ListByRateio returns participants in creation order together with the
	// rateio, so callers can apply the privacy projection.
	ListByRateio(ctx context.Context, rateioID string) (entities.Rateio, []entities.Participant, error)
}

type ParticipantUseCase struct {
	repo       interfaces.IParticipantRepository
	rateioRepo interfaces.IRateioRepository
	eventRepo  interfaces.IRateioEventRepository
}

var _ IParticipantUseCase = (*ParticipantUseCase)(nil)

func NewParticipantUseCase(
	repo interfaces.IParticipantRepository,
	rateioRepo interfaces.IRateioRepository,
	eventRepo interfaces.IRateioEventRepository,
) *ParticipantUseCase {
	return &ParticipantUseCase{repo: repo, rateioRepo: rateioRepo, eventRepo: eventRepo}
}

func (u *ParticipantUseCase) Create(ctx context.Context, rateioID, pixKey string, autoRefund bool) (entities.Participant, error) {
	rateioID = strings.TrimSpace(rateioID)
	if rateioID == "" {
		return entities.Participant{}, ErrInvalidRateioID
	}
	pixKey = strings.TrimSpace(pixKey)

	r, err := u.rateioRepo.GetByID(ctx, rateioID)
	if err != nil {
		return entities.Participant{}, err
	}
	if r.ID == "" {
		return entities.Participant{}, ErrRateioNotFound
	}
	if r.Status != entities.RateioStatusAtivo {
		return entities.Participant{}, ErrRateioNotActive
	}

	keyType, ok := pix.Detect(pixKey)
	if !ok || !pix.Validate(pixKey, keyType) {
		log.Printf("[participant][usecase] invalid pix key rateio_id=%s", rateioID)
		return entities.Participant{}, ErrInvalidPixKey
	}

	now := time.Now().UTC()
	p := entities.Participant{
		ID:         uuid.NewString(),
		RateioID:   rateioID,
		PixKey:     pixKey,
		PixKeyType: keyType,
		AutoRefund: autoRefund,
		Status:     entities.ParticipantStatusPendente,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[participant][usecase] create failed rateio_id=%s err=%v", rateioID, err)
		return entities.Participant{}, err
	}

	// Event message stays anonymous: the audit history is visible to every
	// participant and must not leak who joined.
	event := entities.RateioEvent{
		ID:            uuid.NewString(),
		RateioID:      rateioID,
		ParticipantID: created.ID,
		EventType:     entities.EventTypeParticipanteAdicionado,
		Message:       "Novo participante adicionado",
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := u.eventRepo.Append(ctx, event); err != nil {
		log.Printf("[participant][usecase] event append failed rateio_id=%s err=%v", rateioID, err)
	}

	log.Printf("[participant][usecase] create success participant_id=%s rateio_id=%s key_type=%s", created.ID, rateioID, keyType)
	return created, nil
}

func (u *ParticipantUseCase) GetByID(ctx context.Context, id string) (entities.Participant, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Participant{}, ErrInvalidParticipantID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Participant{}, err
	}
	if p.ID == "" {
		return entities.Participant{}, ErrParticipantNotFound
	}
	return p, nil
}

func (u *ParticipantUseCase) ListByRateio(ctx context.Context, rateioID string) (entities.Rateio, []entities.Participant, error) {
	rateioID = strings.TrimSpace(rateioID)
	if rateioID == "" {
		return entities.Rateio{}, nil, ErrInvalidRateioID
	}

	r, err := u.rateioRepo.GetByID(ctx, rateioID)
	if err != nil {
		return entities.Rateio{}, nil, err
	}
	if r.ID == "" {
		return entities.Rateio{}, nil, ErrRateioNotFound
	}

	participants, err := u.repo.ListByRateio(ctx, rateioID)
	if err != nil {
		return entities.Rateio{}, nil, err
	}
	return r, participants, nil
}
