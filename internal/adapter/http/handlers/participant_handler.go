package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"rateio_pix/internal/adapter/http/dto/request"
	"rateio_pix/internal/adapter/http/dto/response"
	"rateio_pix/internal/usecase"
	"rateio_pix/pkg"

	"github.com/gin-gonic/gin"
)

// ParticipantHandler handles HTTP requests for rateio participation.

type ParticipantHandler struct {
	usecase usecase.IParticipantUseCase
}

func NewParticipantHandler(uc usecase.IParticipantUseCase) *ParticipantHandler {
	return &ParticipantHandler{usecase: uc}
}

// CreateParticipant joins a Pix key to an active rateio. Joining is open to
// anyone holding the share link, so no user header is required.
func (h *ParticipantHandler) CreateParticipant(c *gin.Context) {
	rateioID := c.Param("rateio_id")

	var req request.ParticipantCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[participant][handler] invalid payload rateio_id=%s err=%v", rateioID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_INPUT", "Invalid request body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), rateioID, req.PixKey, req.AutoRefund)
	if err != nil {
		log.Printf("[participant][handler] create failed rateio_id=%s err=%v", rateioID, err)
		appErr := mapParticipantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[participant][handler] create success participant_id=%s rateio_id=%s", created.ID, rateioID)

	// The joining participant gets their own raw key back.
	c.JSON(http.StatusCreated, response.ParticipantResponse{
		ID:         created.ID,
		RateioID:   created.RateioID,
		PixKey:     created.PixKey,
		PixKeyType: string(created.PixKeyType),
		Status:     string(created.Status),
		CreatedAt:  created.CreatedAt,
	})
}

// GetParticipant returns one participant by id. The id is only handed to the
// joiner at creation time, so the response carries their own raw key.
func (h *ParticipantHandler) GetParticipant(c *gin.Context) {
	id := c.Param("participant_id")

	p, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[participant][handler] get failed participant_id=%s err=%v", id, err)
		appErr := mapParticipantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ParticipantResponse{
		ID:         p.ID,
		RateioID:   p.RateioID,
		PixKey:     p.PixKey,
		PixKeyType: string(p.PixKeyType),
		Status:     string(p.Status),
		PaidAmount: p.PaidAmount,
		CreatedAt:  p.CreatedAt,
	})
}

// ListParticipants returns the privacy-projected participant list. Raw Pix
// keys are only included when the X-User-ID header matches the creator.
func (h *ParticipantHandler) ListParticipants(c *gin.Context) {
	rateioID := c.Param("rateio_id")

	rateio, participants, err := h.usecase.ListByRateio(c.Request.Context(), rateioID)
	if err != nil {
		log.Printf("[participant][handler] list failed rateio_id=%s err=%v", rateioID, err)
		appErr := mapParticipantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	viewerID, _ := strconv.ParseInt(c.GetHeader(userIDHeader), 10, 64)
	viewerIsCreator := viewerID > 0 && viewerID == rateio.CreatorID

	c.JSON(http.StatusOK, response.FromParticipants(participants, rateio.PrivacyMode, viewerIsCreator))
}

func mapParticipantError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRateioID),
		errors.Is(err, usecase.ErrInvalidParticipantID),
		errors.Is(err, usecase.ErrInvalidPixKey):
		return pkg.NewDomainError("INVALID_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRateioNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Rateio not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrParticipantNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Participant not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRateioNotActive):
		return pkg.NewDomainError("CONFLICT", err.Error(), err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
