package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jdoe/resume-builder/internal/types"
)

// CreateOrder opens a payment order for the given plan.
func (c *Client) CreateOrder(ctx context.Context, planType string) (*types.Payment, error) {
	req := &types.CreateOrderRequest{PlanType: planType}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid order: %w", err)
	}
	var payment types.Payment
	if err := c.sendJSON(ctx, http.MethodPost, "/payments/create-order", req, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// VerifyPayment submits the gateway callback fields for verification.
func (c *Client) VerifyPayment(ctx context.Context, req *types.VerifyPaymentRequest) (*types.VerifyPaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid verification: %w", err)
	}
	var resp types.VerifyPaymentResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/payments/verify", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PaymentHistory returns the caller's payments, newest first.
func (c *Client) PaymentHistory(ctx context.Context) ([]types.Payment, error) {
	var payments []types.Payment
	if err := c.getJSON(ctx, "/payments/history", &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// OrderDetails fetches one payment by its gateway order id.
func (c *Client) OrderDetails(ctx context.Context, orderID string) (*types.Payment, error) {
	var payment types.Payment
	if err := c.getJSON(ctx, "/payments/order/"+orderID, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// Templates returns the theme catalog and which themes the caller may use.
func (c *Client) Templates(ctx context.Context) (*types.TemplatesResponse, error) {
	var resp types.TemplatesResponse
	if err := c.getJSON(ctx, "/templates", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
