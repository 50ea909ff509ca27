package request

import (
	"time"

	"rateio_pix/internal/domain/entities"
	"rateio_pix/internal/usecase"
)

// RateioCreateRequest is the creator payload to open a collection.
// Amounts arrive in integer cents; expires_at, when set, is RFC3339.

type RateioCreateRequest struct {
	Name         string     `json:"name" binding:"required"`
	Description  string     `json:"description"`
	ImageURL     string     `json:"image_url"`
	TotalAmount  int64      `json:"total_amount" binding:"required"`
	TargetAmount int64      `json:"target_amount"`
	PrivacyMode  string     `json:"privacy_mode"`
	ExpiresAt    *time.Time `json:"expires_at"`
}

func (r RateioCreateRequest) ToInput(creatorID int64) usecase.CreateRateioInput {
	in := usecase.CreateRateioInput{
		CreatorID:    creatorID,
		Name:         r.Name,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		TotalAmount:  r.TotalAmount,
		TargetAmount: r.TargetAmount,
		PrivacyMode:  entities.PrivacyMode(r.PrivacyMode),
	}
	if r.ExpiresAt != nil {
		in.ExpiresAt = r.ExpiresAt.UTC()
	}
	return in
}

type RateioStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

type RateioPrivacyUpdateRequest struct {
	PrivacyMode string `json:"privacy_mode" binding:"required"`
}
