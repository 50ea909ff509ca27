package response

import (
	"time"

	"rateio_pix/internal/domain/entities"
	"rateio_pix/internal/usecase"
)

type RateioResponse struct {
	ID           string     `json:"id"`
	CreatorID    int64      `json:"creator_id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	ImageURL     string     `json:"image_url,omitempty"`
	TotalAmount  int64      `json:"total_amount"`
	TargetAmount int64      `json:"target_amount"`
	PrivacyMode  string     `json:"privacy_mode"`
	Status       string     `json:"status"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func FromRateio(r entities.Rateio) RateioResponse {
	out := RateioResponse{
		ID:           r.ID,
		CreatorID:    r.CreatorID,
		Name:         r.Name,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		TotalAmount:  r.TotalAmount,
		TargetAmount: r.Target(),
		PrivacyMode:  string(r.PrivacyMode),
		Status:       string(r.Status),
		CreatedAt:    r.CreatedAt,
	}
	if !r.ExpiresAt.IsZero() {
		t := r.ExpiresAt
		out.ExpiresAt = &t
	}
	return out
}

func FromRateios(list []entities.Rateio) []RateioResponse {
	out := make([]RateioResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromRateio(r))
	}
	return out
}

type RateioCreateResponse struct {
	Rateio    RateioResponse `json:"rateio"`
	ShareLink string         `json:"share_link"`
}

type ProgressResponse struct {
	PaidAmount   int64   `json:"paid_amount"`
	TargetAmount int64   `json:"target_amount"`
	Percent      float64 `json:"percent"`
	IsPaid       bool    `json:"is_paid"`
}

type RateioViewResponse struct {
	Rateio           RateioResponse   `json:"rateio"`
	Progress         ProgressResponse `json:"progress"`
	ParticipantCount int              `json:"participant_count"`
	Events           []EventResponse  `json:"events"`
}

func FromRateioView(v usecase.RateioView) RateioViewResponse {
	return RateioViewResponse{
		Rateio: FromRateio(v.Rateio),
		Progress: ProgressResponse{
			PaidAmount:   v.Progress.PaidAmount,
			TargetAmount: v.Progress.TargetAmount,
			Percent:      v.Progress.Percent,
			IsPaid:       v.Progress.IsPaid,
		},
		ParticipantCount: v.ParticipantCount,
		Events:           FromEvents(v.Events),
	}
}
