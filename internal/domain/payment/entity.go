package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is one expected incoming payment, created either by the
// initiation flow or synthesized from a successful callback that could not
// be matched.
type Payment struct {
	ID                string          `json:"id"`
	PayerReference    string          `json:"payer_reference"`
	ExpectedAmount    decimal.Decimal `json:"expected_amount"`
	Status            Status          `json:"status"`
	Description       string          `json:"description"`
	ReceiptNumber     *string         `json:"mpesa_receipt_number,omitempty"`
	TransactionDate   *string         `json:"transaction_date,omitempty"`
	ResultCode        *int            `json:"result_code,omitempty"`
	ResultDescription *string         `json:"result_description,omitempty"`
	MerchantRequestID *string         `json:"merchant_request_id,omitempty"`
	CheckoutRequestID *string         `json:"checkout_request_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type Status string

const (
	// StatusPending is the state before any callback arrives. A NULL status
	// column is read back as pending too; the initiation flow does not always
	// set it.
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// FallbackDescription marks rows synthesized from a callback, in lieu of the
// label the initiation flow normally supplies.
const FallbackDescription = "Auto-created from M-Pesa callback"

// NewPayment carries the fields of a row synthesized by fallback creation.
// The callback metadata itself is applied right after the insert, in the
// same transaction.
type NewPayment struct {
	PayerReference string
	Amount         decimal.Decimal
	Status         Status
	Description    string
}
