package payment

import "github.com/shopspring/decimal"

// Callback is the canonical in-memory form of one provider notification.
// It is built once per request by the parser and discarded afterwards;
// it is never persisted as-is.
//
// ReceiptNumber, PayerReference, Amount and TransactionDate are populated
// only for successful callbacks that carried a metadata block.
type Callback struct {
	MerchantRequestID string
	CheckoutRequestID string
	ResultCode        int
	ResultDesc        string

	ReceiptNumber   string
	PayerReference  string // normalized: 254 + last 9 digits
	Amount          decimal.Decimal
	TransactionDate string // provider-local, storage and audit only
}

// Success reports whether the provider confirmed the payment (ResultCode 0).
func (c Callback) Success() bool {
	return c.ResultCode == 0
}

// Status is the state the matched row transitions to.
func (c Callback) Status() Status {
	if c.Success() {
		return StatusCompleted
	}
	return StatusFailed
}

// MatchMethod names the strategy that resolved a callback to a row.
type MatchMethod string

const (
	MatchByCheckoutRequestID MatchMethod = "CheckoutRequestID"
	MatchByPhoneAndAmount    MatchMethod = "PhoneAndAmount"
	MatchByNewRecord         MatchMethod = "NewRecordCreated"
)

type Outcome string

const (
	OutcomeMatched      Outcome = "matched"
	OutcomeCreated      Outcome = "created"
	OutcomeUnresolvable Outcome = "unresolvable"
)

// Resolution is the matcher's verdict for one callback. PaymentID and
// Method are set unless the outcome is OutcomeUnresolvable.
type Resolution struct {
	Outcome   Outcome
	PaymentID string
	Method    MatchMethod
}
