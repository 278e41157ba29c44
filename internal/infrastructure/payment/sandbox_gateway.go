package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pizzeria/backend/internal/domain/ordering"
)

// maxResponseSize caps responses from the gateway (1MB)
const maxResponseSize = 1 * 1024 * 1024

// Config holds the sandbox gateway connection settings
type Config struct {
	BaseURL    string
	MerchantID string
	SecretKey  string
	Timeout    time.Duration
}

// Errors for configuration validation
var (
	ErrMissingBaseURL    = errors.New("payment: missing gateway base URL")
	ErrMissingMerchantID = errors.New("payment: missing merchant ID")
	ErrMissingSecretKey  = errors.New("payment: missing secret key")
)

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrMissingBaseURL
	}
	if c.MerchantID == "" {
		return ErrMissingMerchantID
	}
	if c.SecretKey == "" {
		return ErrMissingSecretKey
	}
	return nil
}

// SandboxGateway implements ordering.PaymentGateway against the
// sandbox card gateway. Requests are signed with an HMAC-SHA256 of
// the JSON body using the merchant secret.
type SandboxGateway struct {
	config     *Config
	httpClient *http.Client
}

// NewSandboxGateway creates a gateway adapter with the given configuration
func NewSandboxGateway(config *Config) (*SandboxGateway, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &SandboxGateway{
		config:     config,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type chargePayload struct {
	MerchantID string `json:"merchant_id"`
	OrderCode  string `json:"order_code"`
	Amount     string `json:"amount"`
	Currency   string `json:"currency"`
}

type chargeResponse struct {
	Status         string `json:"status"`
	TransactionRef string `json:"transaction_ref"`
	Reason         string `json:"reason"`
}

// Charge submits a charge for the order total. A "declined" answer is
// returned as an unapproved result; transport and protocol failures
// are wrapped in ErrGatewayUnavailable.
func (g *SandboxGateway) Charge(ctx context.Context, req ordering.ChargeRequest) (*ordering.ChargeResult, error) {
	payload := chargePayload{
		MerchantID: g.config.MerchantID,
		OrderCode:  req.OrderCode,
		Amount:     req.Amount.Amount().StringFixed(0),
		Currency:   "VND",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("payment: failed to encode charge: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.config.BaseURL+"/charges", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("payment: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Merchant-Id", g.config.MerchantID)
	httpReq.Header.Set("X-Signature", g.sign(body))

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ordering.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ordering.ErrGatewayUnavailable, err)
	}
	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("%w: HTTP %d", ordering.ErrGatewayUnavailable, resp.StatusCode)
	}

	var charge chargeResponse
	if err := json.Unmarshal(respBody, &charge); err != nil {
		return nil, fmt.Errorf("%w: unexpected response: %v", ordering.ErrGatewayUnavailable, err)
	}

	switch charge.Status {
	case "approved":
		return &ordering.ChargeResult{
			Approved:       true,
			TransactionRef: charge.TransactionRef,
		}, nil
	case "declined":
		return &ordering.ChargeResult{
			Approved: false,
			Reason:   charge.Reason,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown charge status %q", ordering.ErrGatewayUnavailable, charge.Status)
	}
}

// sign computes the request signature over the raw JSON body
func (g *SandboxGateway) sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(g.config.SecretKey))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

var _ ordering.PaymentGateway = (*SandboxGateway)(nil)
