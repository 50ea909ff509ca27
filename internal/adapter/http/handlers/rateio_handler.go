package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"rateio_pix/internal/adapter/http/dto/request"
	"rateio_pix/internal/adapter/http/dto/response"
	"rateio_pix/internal/domain/entities"
	"rateio_pix/internal/usecase"
	"rateio_pix/pkg"

	"github.com/gin-gonic/gin"
)

// Creator identity arrives pre-authenticated in the X-User-ID header; the
// upstream gateway owns authentication and this service only authorizes.
const userIDHeader = "X-User-ID"

// RateioHandler handles HTTP requests for the rateio lifecycle.

type RateioHandler struct {
	usecase usecase.IRateioUseCase
}

func NewRateioHandler(uc usecase.IRateioUseCase) *RateioHandler {
	return &RateioHandler{usecase: uc}
}

// CreateRateio opens a collection for the authenticated creator.
func (h *RateioHandler) CreateRateio(c *gin.Context) {
	creatorID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request.RateioCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[rateio][handler] invalid payload creator_id=%d err=%v", creatorID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_INPUT", "Invalid request body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, shareLink, err := h.usecase.Create(c.Request.Context(), req.ToInput(creatorID))
	if err != nil {
		log.Printf("[rateio][handler] create failed creator_id=%d err=%v", creatorID, err)
		appErr := mapRateioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[rateio][handler] create success rateio_id=%s creator_id=%d", created.ID, creatorID)

	c.JSON(http.StatusCreated, response.RateioCreateResponse{
		Rateio:    response.FromRateio(created),
		ShareLink: shareLink,
	})
}

// GetRateio returns a rateio with progress, participant count and history.
func (h *RateioHandler) GetRateio(c *gin.Context) {
	id := c.Param("rateio_id")

	view, err := h.usecase.GetView(c.Request.Context(), id)
	if err != nil {
		log.Printf("[rateio][handler] get failed rateio_id=%s err=%v", id, err)
		appErr := mapRateioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRateioView(view))
}

// ListRateios returns all rateios created by the authenticated user.
func (h *RateioHandler) ListRateios(c *gin.Context) {
	creatorID, ok := currentUserID(c)
	if !ok {
		return
	}

	list, err := h.usecase.ListByCreator(c.Request.Context(), creatorID)
	if err != nil {
		log.Printf("[rateio][handler] list failed creator_id=%d err=%v", creatorID, err)
		appErr := mapRateioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRateios(list))
}

// UpdateRateioStatus applies a creator-requested terminal transition.
func (h *RateioHandler) UpdateRateioStatus(c *gin.Context) {
	id := c.Param("rateio_id")
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request.RateioStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_INPUT", "Invalid request body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), id, actorID, entities.RateioStatus(req.Status))
	if err != nil {
		log.Printf("[rateio][handler] status update failed rateio_id=%s actor_id=%d err=%v", id, actorID, err)
		appErr := mapRateioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[rateio][handler] status update success rateio_id=%s status=%s", id, updated.Status)

	c.JSON(http.StatusOK, response.FromRateio(updated))
}

// UpdateRateioPrivacy tightens the privacy mode (PARCIAL -> TOTAL only).
func (h *RateioHandler) UpdateRateioPrivacy(c *gin.Context) {
	id := c.Param("rateio_id")
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request.RateioPrivacyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_INPUT", "Invalid request body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdatePrivacy(c.Request.Context(), id, actorID, entities.PrivacyMode(req.PrivacyMode))
	if err != nil {
		log.Printf("[rateio][handler] privacy update failed rateio_id=%s actor_id=%d err=%v", id, actorID, err)
		appErr := mapRateioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRateio(updated))
}

func currentUserID(c *gin.Context) (int64, bool) {
	raw := c.GetHeader(userIDHeader)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		appErr := pkg.NewDomainErrorSimple("INVALID_INPUT", "Missing or invalid X-User-ID header", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return 0, false
	}
	return id, true
}

func mapRateioError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRateioID),
		errors.Is(err, usecase.ErrInvalidCreatorID),
		errors.Is(err, usecase.ErrInvalidRateioName),
		errors.Is(err, usecase.ErrInvalidDescription),
		errors.Is(err, usecase.ErrInvalidTotalAmount),
		errors.Is(err, usecase.ErrInvalidTargetAmount),
		errors.Is(err, usecase.ErrInvalidExpiry),
		errors.Is(err, usecase.ErrInvalidPrivacyMode),
		errors.Is(err, usecase.ErrInvalidStatusTarget):
		return pkg.NewDomainError("INVALID_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRateioNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Rateio not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotCreator):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Only the rateio creator can perform this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRateioNotActive), errors.Is(err, usecase.ErrPrivacyModeRelaxed):
		return pkg.NewDomainError("CONFLICT", err.Error(), err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
