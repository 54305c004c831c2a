package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Payment represents one payment order and its lifecycle.
type Payment struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"userId"`
	GatewayOrderID   string    `json:"orderId"`
	GatewayPaymentID string    `json:"paymentId,omitempty"`
	Amount           int64     `json:"amount"`
	Currency         string    `json:"currency"`
	PlanType         string    `json:"planType"`
	Status           string    `json:"status"`
	Receipt          string    `json:"receipt"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Payment statuses.
const (
	PaymentStatusCreated = "created"
	PaymentStatusPaid    = "paid"
)

// CreateOrderRequest asks the payment service to open a gateway order.
type CreateOrderRequest struct {
	PlanType string `json:"planType" validate:"required"`
}

// VerifyPaymentRequest carries the gateway callback fields for signature verification.
type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id" validate:"required"`
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
	Signature string `json:"razorpay_signature" validate:"required"`
}

// VerifyPaymentResponse reports the outcome of a verification.
type VerifyPaymentResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Validate validates the CreateOrderRequest using the validator.
func (r *CreateOrderRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the VerifyPaymentRequest using the validator.
func (r *VerifyPaymentRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
