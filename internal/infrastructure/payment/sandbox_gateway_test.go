package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pizzeria/backend/internal/domain/ordering"
	"github.com/pizzeria/backend/internal/domain/shared/valueobject"
)

func testConfig(baseURL string) *Config {
	return &Config{
		BaseURL:    baseURL,
		MerchantID: "merchant-1",
		SecretKey:  "test-secret",
		Timeout:    5 * time.Second,
	}
}

func TestSandboxGateway_ChargeApproved(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/charges", r.URL.Path)
		assert.Equal(t, "merchant-1", r.Header.Get("X-Merchant-Id"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		// The signature must cover the exact body bytes.
		mac := hmac.New(sha256.New, []byte("test-secret"))
		mac.Write(body)
		assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), r.Header.Get("X-Signature"))

		var payload map[string]string
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "PZ-20260901-ABCDEF12", payload["order_code"])
		assert.Equal(t, "300000", payload["amount"])
		assert.Equal(t, "VND", payload["currency"])

		_, _ = w.Write([]byte(`{"status":"approved","transaction_ref":"txn-123"}`))
	}))
	defer server.Close()

	gateway, err := NewSandboxGateway(testConfig(server.URL))
	require.NoError(t, err)

	result, err := gateway.Charge(context.Background(), ordering.ChargeRequest{
		OrderCode: "PZ-20260901-ABCDEF12",
		Amount:    valueobject.NewMoneyVNDFromInt(300000),
	})
	require.NoError(t, err)
	assert.True(t, result.Approved)
	assert.Equal(t, "txn-123", result.TransactionRef)
}

func TestSandboxGateway_ChargeDeclined(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"status":"declined","reason":"insufficient funds"}`))
	}))
	defer server.Close()

	gateway, err := NewSandboxGateway(testConfig(server.URL))
	require.NoError(t, err)

	result, err := gateway.Charge(context.Background(), ordering.ChargeRequest{
		OrderCode: "PZ-20260901-ABCDEF12",
		Amount:    valueobject.NewMoneyVNDFromInt(300000),
	})
	require.NoError(t, err)
	assert.False(t, result.Approved)
	assert.Equal(t, "insufficient funds", result.Reason)
}

func TestSandboxGateway_ChargeUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	gateway, err := NewSandboxGateway(testConfig(server.URL))
	require.NoError(t, err)

	_, err = gateway.Charge(context.Background(), ordering.ChargeRequest{
		OrderCode: "PZ-20260901-ABCDEF12",
		Amount:    valueobject.NewMoneyVNDFromInt(300000),
	})
	assert.ErrorIs(t, err, ordering.ErrGatewayUnavailable)
}

func TestSandboxGateway_ConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr error
	}{
		{"missing base URL", &Config{MerchantID: "m", SecretKey: "s"}, ErrMissingBaseURL},
		{"missing merchant", &Config{BaseURL: "http://gw", SecretKey: "s"}, ErrMissingMerchantID},
		{"missing secret", &Config{BaseURL: "http://gw", MerchantID: "m"}, ErrMissingSecretKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSandboxGateway(tt.config)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
