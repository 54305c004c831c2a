// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/jdoe/resume-builder/internal/payments"
	"github.com/jdoe/resume-builder/internal/types"
)

// handleCreateOrder opens a gateway order for the Premium plan and records it.
func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	var req types.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		jsonError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}
	if req.PlanType != types.SubscriptionPremium {
		jsonError(w, http.StatusBadRequest, "Unknown plan type: "+req.PlanType)
		return
	}

	receipt := payments.NewReceipt(req.PlanType)
	order, err := s.gateway.CreateOrder(r.Context(), payments.PremiumAmount, receipt)
	if err != nil {
		jsonError(w, http.StatusBadGateway, err.Error())
		return
	}

	payment := &types.Payment{
		UserID:         userID,
		GatewayOrderID: order.ID,
		Amount:         order.Amount,
		Currency:       order.Currency,
		PlanType:       req.PlanType,
		Status:         types.PaymentStatusCreated,
		Receipt:        receipt,
	}
	if _, err := s.db.CreatePayment(r.Context(), payment); err != nil {
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"orderId":  order.ID,
		"amount":   order.Amount,
		"currency": order.Currency,
		"keyId":    s.gateway.KeyID(),
	})
}

// handleVerifyPayment checks the gateway callback signature, marks the order
// paid, and upgrades the caller's subscription plan.
func (s *Server) handleVerifyPayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	var req types.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		jsonError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	payment, err := s.db.GetPaymentByOrderID(r.Context(), req.OrderID, userID)
	if err != nil {
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}
	if payment == nil {
		err := &ErrOrderNotFound{OrderID: req.OrderID}
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}

	if !s.gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		err := &ErrInvalidSignature{}
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}

	if _, err := s.db.MarkPaymentPaid(r.Context(), req.OrderID, req.PaymentID, req.Signature); err != nil {
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}
	if err := s.db.SetSubscriptionPlan(r.Context(), userID, payment.PlanType); err != nil {
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}

	jsonResponse(w, http.StatusOK, types.VerifyPaymentResponse{
		Message: "Payment verified successfully",
		Status:  types.PaymentStatusPaid,
	})
}

// handlePaymentHistory returns the caller's payments, newest first.
func (s *Server) handlePaymentHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	history, err := s.db.ListPaymentsByUser(r.Context(), userID)
	if err != nil {
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}
	if history == nil {
		history = []*types.Payment{}
	}
	jsonResponse(w, http.StatusOK, history)
}

// handleGetOrder returns a single payment order by gateway order id.
func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	orderID := r.PathValue("id")
	payment, err := s.db.GetPaymentByOrderID(r.Context(), orderID, userID)
	if err != nil {
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}
	if payment == nil {
		err := &ErrOrderNotFound{OrderID: orderID}
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}
	jsonResponse(w, http.StatusOK, payment)
}
