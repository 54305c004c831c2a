// Package payments integrates with the Razorpay-style payment gateway:
// opening orders, and verifying callback signatures.
package payments

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// PremiumAmount is the price of the Premium plan in the currency's
// smallest unit (paise for INR).
const PremiumAmount int64 = 99900

// Currency is the only currency the gateway is used with.
const Currency = "INR"

// Order is the gateway's representation of an opened order.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Gateway talks to the payment provider's orders API.
type Gateway struct {
	keyID     string
	keySecret string
	baseURL   string
	client    *http.Client
}

// NewGateway creates a gateway client authenticated with the given key pair.
func NewGateway(keyID, keySecret, baseURL string) *Gateway {
	if baseURL == "" {
		baseURL = "https://api.razorpay.com/v1"
	}
	return &Gateway{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   baseURL,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

// KeyID returns the public key id for client-side checkout.
func (g *Gateway) KeyID() string {
	return g.keyID
}

// NewReceipt builds a short unique receipt reference for an order.
func NewReceipt(planType string) string {
	return planType + "-" + uuid.New().String()[:8]
}

// CreateOrder opens a new order for the given amount.
func (g *Gateway) CreateOrder(ctx context.Context, amount int64, receipt string) (*Order, error) {
	payload := map[string]any{
		"amount":   amount,
		"currency": Currency,
		"receipt":  receipt,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(g.keyID, g.keySecret)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, data)
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("failed to decode order response: %w", err)
	}
	return &order, nil
}

// VerifySignature checks the callback signature the gateway computes over
// "orderID|paymentID" with HMAC-SHA256 keyed by the secret.
func (g *Gateway) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifySignature(g.keySecret, orderID, paymentID, signature)
}

// VerifySignature reports whether signature is a valid HMAC-SHA256 of
// "orderID|paymentID" under the given secret.
func VerifySignature(secret, orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
