package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"rateio_pix/internal/domain/entities"
	"rateio_pix/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrMissingPagarmeAPIKey = errors.New("missing PAGARME_API_KEY")
var ErrPagarmeGatewayNotConfigured = errors.New("pagarme gateway not configured")

const (
	defaultPagarmeBaseURL = "https://api.pagar.me/core/v5"
	pixChargeExpirySecs   = 900
	requestTimeout        = 10 * time.Second
)

type PagarmeGateway struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	mockMode   bool
}

var _ interfaces.IChargeGateway = (*PagarmeGateway)(nil)

func NewPagarmeGateway(apiKey string) (*PagarmeGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &PagarmeGateway{mockMode: true}, nil
	}

	if apiKey == "" {
		log.Printf("[payment][gateway] missing PAGARME_API_KEY")
		return nil, ErrMissingPagarmeAPIKey
	}

	baseURL := strings.TrimRight(os.Getenv("PAGARME_BASE_URL"), "/")
	if baseURL == "" {
		baseURL = defaultPagarmeBaseURL
	}
	log.Printf("[payment][gateway] Pagar.me client initialized base_url=%s", baseURL)

	return &PagarmeGateway{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}, nil
}

// Wire structs mirror the subset of the Pagar.me v5 charge payloads the
// service touches. Pix data lives under last_transaction.

type pagarmeChargeRequest struct {
	Amount        int64             `json:"amount"`
	PaymentMethod string            `json:"payment_method"`
	Description   string            `json:"description,omitempty"`
	Capture       bool              `json:"capture"`
	Pix           pagarmePixOptions `json:"pix"`
}

type pagarmePixOptions struct {
	ExpiresIn int `json:"expires_in"`
}

type pagarmeCharge struct {
	ID              string              `json:"id"`
	Status          string              `json:"status"`
	Amount          int64               `json:"amount"`
	LastTransaction *pagarmeTransaction `json:"last_transaction,omitempty"`
}

type pagarmeTransaction struct {
	QRCode        string `json:"qr_code"`
	QRCodeText    string `json:"qr_code_text"`
	PixExpiresAt  string `json:"pix_qr_code_expires_at"`
	TransactionID string `json:"id"`
}

type pagarmeRefundRequest struct {
	Amount int64 `json:"amount,omitempty"`
}

type pagarmeRefund struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (g *PagarmeGateway) CreateCharge(ctx context.Context, amountCents int64, description string) (entities.Charge, error) {
	if g != nil && g.mockMode {
		return g.mockCharge(amountCents), nil
	}
	if g == nil || g.httpClient == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.Charge{}, ErrPagarmeGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create charge start amount=%d", amountCents)

	body := pagarmeChargeRequest{
		Amount:        amountCents,
		PaymentMethod: "pix",
		Description:   description,
		Capture:       true,
		Pix:           pagarmePixOptions{ExpiresIn: pixChargeExpirySecs},
	}

	var resp pagarmeCharge
	if err := g.do(ctx, http.MethodPost, "/charges", body, &resp); err != nil {
		log.Printf("[payment][gateway] create charge failed err=%v", err)
		return entities.Charge{}, err
	}
	log.Printf("[payment][gateway] create charge success charge_id=%s status=%s", resp.ID, resp.Status)

	return toCharge(resp), nil
}

func (g *PagarmeGateway) GetCharge(ctx context.Context, chargeID string) (entities.Charge, error) {
	if g != nil && g.mockMode {
		return entities.Charge{ID: chargeID, Status: "pending"}, nil
	}
	if g == nil || g.httpClient == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.Charge{}, ErrPagarmeGatewayNotConfigured
	}

	var resp pagarmeCharge
	if err := g.do(ctx, http.MethodGet, "/charges/"+chargeID, nil, &resp); err != nil {
		log.Printf("[payment][gateway] get charge failed charge_id=%s err=%v", chargeID, err)
		return entities.Charge{}, err
	}

	return toCharge(resp), nil
}

func (g *PagarmeGateway) RefundCharge(ctx context.Context, chargeID string, amountCents int64) (entities.RefundResult, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock refund charge_id=%s", chargeID)
		return entities.RefundResult{ID: "re_" + uuid.NewString(), Status: "pending"}, nil
	}
	if g == nil || g.httpClient == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.RefundResult{}, ErrPagarmeGatewayNotConfigured
	}
	log.Printf("[payment][gateway] refund start charge_id=%s amount=%d", chargeID, amountCents)

	var body any
	if amountCents > 0 {
		body = pagarmeRefundRequest{Amount: amountCents}
	} else {
		body = struct{}{}
	}

	var resp pagarmeRefund
	if err := g.do(ctx, http.MethodPost, "/charges/"+chargeID+"/refunds", body, &resp); err != nil {
		log.Printf("[payment][gateway] refund failed charge_id=%s err=%v", chargeID, err)
		return entities.RefundResult{}, err
	}
	log.Printf("[payment][gateway] refund success charge_id=%s refund_id=%s status=%s", chargeID, resp.ID, resp.Status)

	return entities.RefundResult{ID: resp.ID, Status: resp.Status}, nil
}

func (g *PagarmeGateway) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &interfaces.GatewayError{Err: err}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return &interfaces.GatewayError{Err: err}
	}
	req.SetBasicAuth(g.apiKey, "")
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return &interfaces.GatewayError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return &interfaces.GatewayError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &interfaces.GatewayError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &interfaces.GatewayError{StatusCode: resp.StatusCode, Body: string(respBody), Err: err}
		}
	}
	return nil
}

func (g *PagarmeGateway) mockCharge(amountCents int64) entities.Charge {
	id := "ch_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 36)
	log.Printf("[payment][gateway] mock create charge_id=%s amount=%d", id, amountCents)
	return entities.Charge{
		ID:        id,
		Status:    "pending",
		Amount:    amountCents,
		QRCode:    fmt.Sprintf("https://mock.pagar.me/qr/%s.png", id),
		CopyPaste: "00020126mockpixcopypaste" + id,
		ExpiresAt: time.Now().UTC().Add(pixChargeExpirySecs * time.Second),
	}
}

func toCharge(c pagarmeCharge) entities.Charge {
	out := entities.Charge{
		ID:     c.ID,
		Status: c.Status,
		Amount: c.Amount,
	}
	if c.LastTransaction != nil {
		out.QRCode = c.LastTransaction.QRCode
		out.CopyPaste = c.LastTransaction.QRCodeText
		if c.LastTransaction.PixExpiresAt != "" {
			if t, err := time.Parse(time.RFC3339, c.LastTransaction.PixExpiresAt); err == nil {
				out.ExpiresAt = t.UTC()
			}
		}
	}
	return out
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "PAGARME_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
