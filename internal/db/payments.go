package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jdoe/resume-builder/internal/types"
)

const paymentColumns = `id, user_id, gateway_order_id, gateway_payment_id,
	amount, currency, plan_type, status, receipt, created_at`

func scanPayment(row pgx.Row) (*types.Payment, error) {
	var p types.Payment
	err := row.Scan(&p.ID, &p.UserID, &p.GatewayOrderID, &p.GatewayPaymentID,
		&p.Amount, &p.Currency, &p.PlanType, &p.Status, &p.Receipt, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// CreatePayment records a freshly opened gateway order.
func (db *DB) CreatePayment(ctx context.Context, p *types.Payment) (*types.Payment, error) {
	row := db.pool.QueryRow(ctx,
		`INSERT INTO payments (user_id, gateway_order_id, amount, currency, plan_type, status, receipt)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+paymentColumns,
		p.UserID, p.GatewayOrderID, p.Amount, p.Currency, p.PlanType, p.Status, p.Receipt,
	)
	created, err := scanPayment(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	return created, nil
}

// GetPaymentByOrderID fetches the payment for a gateway order scoped to its
// owner. Returns nil when not found.
func (db *DB) GetPaymentByOrderID(ctx context.Context, orderID string, userID uuid.UUID) (*types.Payment, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE gateway_order_id = $1 AND user_id = $2`,
		orderID, userID,
	)
	p, err := scanPayment(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return p, nil
}

// MarkPaymentPaid records the gateway payment id and signature after a
// successful verification.
func (db *DB) MarkPaymentPaid(ctx context.Context, orderID, paymentID, signature string) (*types.Payment, error) {
	row := db.pool.QueryRow(ctx,
		`UPDATE payments SET gateway_payment_id = $1, gateway_signature = $2, status = $3
		 WHERE gateway_order_id = $4
		 RETURNING `+paymentColumns,
		paymentID, signature, types.PaymentStatusPaid, orderID,
	)
	p, err := scanPayment(row)
	if err != nil {
		return nil, fmt.Errorf("failed to mark payment paid: %w", err)
	}
	return p, nil
}

// ListPaymentsByUser returns the user's payment history, newest first.
func (db *DB) ListPaymentsByUser(ctx context.Context, userID uuid.UUID) ([]*types.Payment, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*types.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to list payments: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}
