package response

import (
	"fmt"
	"strings"
	"time"

	"rateio_pix/internal/domain/entities"
)

type ParticipantResponse struct {
	ID         string    `json:"id"`
	RateioID   string    `json:"rateio_id"`
	Label      string    `json:"label,omitempty"`
	PixKey     string    `json:"pix_key,omitempty"`
	PixKeyType string    `json:"pix_key_type,omitempty"`
	Status     string    `json:"status"`
	PaidAmount int64     `json:"paid_amount"`
	CreatedAt  time.Time `json:"created_at"`
}

// FromParticipants applies the privacy projection. The creator always sees raw
// keys. For everyone else TOTAL replaces identity with a positional label
// (P#01, P#02, ... by creation order; the input must already be sorted by
// CreatedAt) and the other modes mask the key.
func FromParticipants(list []entities.Participant, mode entities.PrivacyMode, viewerIsCreator bool) []ParticipantResponse {
	out := make([]ParticipantResponse, 0, len(list))
	for i, p := range list {
		item := ParticipantResponse{
			ID:         p.ID,
			RateioID:   p.RateioID,
			Status:     string(p.Status),
			PaidAmount: p.PaidAmount,
			CreatedAt:  p.CreatedAt,
		}
		switch {
		case viewerIsCreator:
			item.PixKey = p.PixKey
			item.PixKeyType = string(p.PixKeyType)
		case mode == entities.PrivacyModeTotal:
			item.Label = fmt.Sprintf("P#%02d", i+1)
		default:
			item.PixKey = maskPixKey(p.PixKey)
			item.PixKeyType = string(p.PixKeyType)
		}
		out = append(out, item)
	}
	return out
}

// maskPixKey keeps just enough of the key for a participant to recognize
// themselves: first three and last two characters, emails keep the domain.
func maskPixKey(key string) string {
	if at := strings.LastIndex(key, "@"); at > 0 {
		local := key[:at]
		if len(local) <= 2 {
			return "***" + key[at:]
		}
		return local[:2] + "***" + key[at:]
	}
	if len(key) <= 5 {
		return "***"
	}
	return key[:3] + "***" + key[len(key)-2:]
}
