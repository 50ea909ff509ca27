package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"rateio_pix/internal/domain/entities"
	"rateio_pix/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRateioNotFound       = errors.New("rateio not found")
	ErrRateioNotActive      = errors.New("rateio is not active")
	ErrNotCreator           = errors.New("actor is not the rateio creator")
	ErrInvalidRateioName    = errors.New("invalid rateio name")
	ErrInvalidDescription   = errors.New("invalid rateio description")
	ErrInvalidTotalAmount   = errors.New("invalid total amount")
	ErrInvalidTargetAmount  = errors.New("invalid target amount")
	ErrInvalidExpiry        = errors.New("invalid expiry")
	ErrInvalidPrivacyMode   = errors.New("invalid privacy mode")
	ErrInvalidStatusTarget  = errors.New("invalid status target")
	ErrPrivacyModeRelaxed   = errors.New("privacy mode can only be tightened")
	ErrInvalidRateioID      = errors.New("invalid rateio id")
	ErrInvalidCreatorID     = errors.New("invalid creator id")
)

const (
	rateioNameMinLen      = 3
	rateioNameMaxLen      = 60
	rateioDescriptionMax  = 140
	rateioMinExpiryWindow = 15 * time.Minute
	shareLinkHost         = "familyos.link"
)

// CreateRateioInput carries the creator command to open a collection.

type CreateRateioInput struct {
	CreatorID    int64
	Name         string
	Description  string
	ImageURL     string
	TotalAmount  int64
	TargetAmount int64
	PrivacyMode  entities.PrivacyMode
	ExpiresAt    time.Time
}

// RateioView is the read projection of a rateio: attributes plus progress,
// participant count and the event history newest-first.

type RateioView struct {
	Rateio           entities.Rateio
	Progress         Progress
	ParticipantCount int
	Events           []entities.RateioEvent
}

// IRateioUseCase exposes the rateio lifecycle operations.
//
// Status transitions are terminal: ATIVO -> CONCLUIDO | CANCELADO, applied by
// conditional writes so two concurrent requests cannot both transition.

type IRateioUseCase interface {
	Create(ctx context.Context, in CreateRateioInput) (entities.Rateio, string, error)
	GetView(ctx context.Context, id string) (RateioView, error)
	ListByCreator(ctx context.Context, creatorID int64) ([]entities.Rateio, error)
	UpdateStatus(ctx context.Context, id string, actorID int64, status entities.RateioStatus) (entities.Rateio, error)
	UpdatePrivacy(ctx context.Context, id string, actorID int64, mode entities.PrivacyMode) (entities.Rateio, error)
}

type RateioUseCase struct {
	repo            interfaces.IRateioRepository
	participantRepo interfaces.IParticipantRepository
	eventRepo       interfaces.IRateioEventRepository
	progress        *ProgressCalculator
}

var _ IRateioUseCase = (*RateioUseCase)(nil)

func NewRateioUseCase(
	repo interfaces.IRateioRepository,
	participantRepo interfaces.IParticipantRepository,
	eventRepo interfaces.IRateioEventRepository,
	progress *ProgressCalculator,
) *RateioUseCase {
	return &RateioUseCase{repo: repo, participantRepo: participantRepo, eventRepo: eventRepo, progress: progress}
}

func (u *RateioUseCase) Create(ctx context.Context, in CreateRateioInput) (entities.Rateio, string, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.CreatorID <= 0 {
		return entities.Rateio{}, "", ErrInvalidCreatorID
	}
	// Limits count characters, not bytes, so accented names are not penalized.
	nameLen := utf8.RuneCountInString(in.Name)
	if nameLen < rateioNameMinLen || nameLen > rateioNameMaxLen {
		return entities.Rateio{}, "", ErrInvalidRateioName
	}
	if utf8.RuneCountInString(in.Description) > rateioDescriptionMax {
		return entities.Rateio{}, "", ErrInvalidDescription
	}
	if in.TotalAmount < 1 {
		return entities.Rateio{}, "", ErrInvalidTotalAmount
	}
	if in.TargetAmount < 0 || in.TargetAmount > in.TotalAmount {
		return entities.Rateio{}, "", ErrInvalidTargetAmount
	}
	if in.PrivacyMode == "" {
		in.PrivacyMode = entities.PrivacyModeParcial
	}
	switch in.PrivacyMode {
	case entities.PrivacyModeTotal, entities.PrivacyModeParcial, entities.PrivacyModeAberto:
	default:
		return entities.Rateio{}, "", ErrInvalidPrivacyMode
	}
	now := time.Now().UTC()
	if !in.ExpiresAt.IsZero() && in.ExpiresAt.Before(now.Add(rateioMinExpiryWindow)) {
		return entities.Rateio{}, "", ErrInvalidExpiry
	}

	r := entities.Rateio{
		ID:           uuid.NewString(),
		CreatorID:    in.CreatorID,
		Name:         in.Name,
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		TotalAmount:  in.TotalAmount,
		TargetAmount: in.TargetAmount,
		PrivacyMode:  in.PrivacyMode,
		Status:       entities.RateioStatusAtivo,
		ExpiresAt:    in.ExpiresAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		log.Printf("[rateio][usecase] create failed creator_id=%d err=%v", in.CreatorID, err)
		return entities.Rateio{}, "", err
	}

	u.appendEvent(ctx, entities.RateioEvent{
		RateioID:  created.ID,
		EventType: entities.EventTypeCriado,
		Message:   fmt.Sprintf("Rateio %q criado", created.Name),
	})

	slug := fmt.Sprintf("%s/%s", shareLinkHost, created.ID)
	log.Printf("[rateio][usecase] create success rateio_id=%s creator_id=%d total=%d", created.ID, in.CreatorID, in.TotalAmount)
	return created, slug, nil
}

func (u *RateioUseCase) GetView(ctx context.Context, id string) (RateioView, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return RateioView{}, ErrInvalidRateioID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return RateioView{}, err
	}
	if r.ID == "" {
		return RateioView{}, ErrRateioNotFound
	}

	progress, err := u.progress.ForRateio(ctx, r)
	if err != nil {
		return RateioView{}, err
	}
	participants, err := u.participantRepo.ListByRateio(ctx, id)
	if err != nil {
		return RateioView{}, err
	}
	events, err := u.eventRepo.ListByRateio(ctx, id)
	if err != nil {
		return RateioView{}, err
	}

	return RateioView{
		Rateio:           r,
		Progress:         progress,
		ParticipantCount: len(participants),
		Events:           events,
	}, nil
}

func (u *RateioUseCase) ListByCreator(ctx context.Context, creatorID int64) ([]entities.Rateio, error) {
	if creatorID <= 0 {
		return nil, ErrInvalidCreatorID
	}
	return u.repo.ListByCreator(ctx, creatorID)
}

func (u *RateioUseCase) UpdateStatus(ctx context.Context, id string, actorID int64, status entities.RateioStatus) (entities.Rateio, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Rateio{}, ErrInvalidRateioID
	}
	if status != entities.RateioStatusConcluido && status != entities.RateioStatusCancelado {
		return entities.Rateio{}, ErrInvalidStatusTarget
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Rateio{}, err
	}
	if r.ID == "" {
		return entities.Rateio{}, ErrRateioNotFound
	}
	if r.CreatorID != actorID {
		return entities.Rateio{}, ErrNotCreator
	}

	updated, err := u.repo.UpdateStatusIfActive(ctx, id, status)
	if err != nil {
		return entities.Rateio{}, err
	}
	if updated.ID == "" {
		// Lost the race or the rateio was already terminal.
		return entities.Rateio{}, ErrRateioNotActive
	}

	eventType := entities.EventTypeCancelado
	message := "Rateio cancelado"
	if status == entities.RateioStatusConcluido {
		eventType = entities.EventTypeConcluido
		message = "Rateio concluído"
	}
	u.appendEvent(ctx, entities.RateioEvent{
		RateioID:  id,
		EventType: eventType,
		Message:   message,
	})

	log.Printf("[rateio][usecase] status updated rateio_id=%s status=%s actor_id=%d", id, status, actorID)
	return updated, nil
}

func (u *RateioUseCase) UpdatePrivacy(ctx context.Context, id string, actorID int64, mode entities.PrivacyMode) (entities.Rateio, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Rateio{}, ErrInvalidRateioID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Rateio{}, err
	}
	if r.ID == "" {
		return entities.Rateio{}, ErrRateioNotFound
	}
	if r.CreatorID != actorID {
		return entities.Rateio{}, ErrNotCreator
	}

	// Privacy is monotonic: the only legal move is PARCIAL -> TOTAL.
	if mode != entities.PrivacyModeTotal {
		return entities.Rateio{}, ErrPrivacyModeRelaxed
	}

	updated, err := u.repo.TightenPrivacy(ctx, id)
	if err != nil {
		return entities.Rateio{}, err
	}
	if updated.ID == "" {
		return entities.Rateio{}, ErrPrivacyModeRelaxed
	}

	log.Printf("[rateio][usecase] privacy tightened rateio_id=%s mode=%s actor_id=%d", id, mode, actorID)
	return updated, nil
}

// appendEvent writes an audit entry; event write failures are logged, never
// propagated, so they cannot roll back a state change that already happened.
func (u *RateioUseCase) appendEvent(ctx context.Context, e entities.RateioEvent) {
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()
	if _, err := u.eventRepo.Append(ctx, e); err != nil {
		log.Printf("[rateio][usecase] event append failed rateio_id=%s type=%s err=%v", e.RateioID, e.EventType, err)
	}
}
