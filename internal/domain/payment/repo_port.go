package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source repo_port.go -destination mock_payment_repo.go -package payment

type TxPaymentRepo interface {
	// GetByCheckoutRequestID is the strong-key lookup. No status or recency
	// filter: a stored checkout request ID is authoritative whenever the
	// callback arrives. Returns apperror.ErrPaymentNotFound when absent.
	GetByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (Payment, error)

	// FindRecentPending is the weak-key lookup: newest row with the given
	// payer reference and exact amount, still absent-or-pending, created at
	// or after since. Returns apperror.ErrPaymentNotFound when none qualifies.
	FindRecentPending(ctx context.Context, payerReference string, amount decimal.Decimal, since time.Time) (Payment, error)

	// Create inserts a new row and returns its generated id.
	Create(ctx context.Context, p NewPayment) (string, error)

	// ApplyCallback overwrites status, result code and result description
	// unconditionally, and fills in receipt number, transaction date and the
	// request IDs only when the callback carries a non-empty value.
	ApplyCallback(ctx context.Context, id string, cb Callback) error
}

type PaymentRepo interface {
	TxPaymentRepo
	InTransaction(ctx context.Context, fn func(tx TxPaymentRepo) error) error
}
