package mpesa

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"mpesa-reconciler/internal/domain/payment"

	"github.com/shopspring/decimal"
)

// ErrMalformedCallback reports a request body that is not a well-formed
// STK callback envelope. No store access happens for such requests.
var ErrMalformedCallback = errors.New("malformed callback")

// countryCodePrefix is prepended to the significant digits of the payer's
// phone number to build the canonical payer reference.
const countryCodePrefix = "254"

// significantDigits is how many trailing digits of the raw phone number
// identify the subscriber.
const significantDigits = 9

// ParseCallback validates the envelope and produces the canonical callback.
// Metadata is only consulted for successful callbacks (ResultCode 0); for
// failures the identifying fields stay empty and matching falls back to the
// checkout request ID alone.
func ParseCallback(raw []byte) (payment.Callback, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var env Envelope
	if err := dec.Decode(&env); err != nil {
		return payment.Callback{}, fmt.Errorf("%w: %s", ErrMalformedCallback, err.Error())
	}

	stk := env.Body.StkCallback
	if stk == nil {
		return payment.Callback{}, fmt.Errorf("%w: missing Body.stkCallback", ErrMalformedCallback)
	}
	if stk.MerchantRequestID == nil || stk.CheckoutRequestID == nil || stk.ResultCode == nil || stk.ResultDesc == nil {
		return payment.Callback{}, fmt.Errorf("%w: incomplete stkCallback", ErrMalformedCallback)
	}

	cb := payment.Callback{
		MerchantRequestID: *stk.MerchantRequestID,
		CheckoutRequestID: *stk.CheckoutRequestID,
		ResultCode:        *stk.ResultCode,
		ResultDesc:        *stk.ResultDesc,
	}

	if cb.ResultCode == 0 && stk.CallbackMetadata != nil {
		var rawPhone, rawDate string
		for _, item := range stk.CallbackMetadata.Item {
			switch item.Name {
			case itemReceiptNumber:
				cb.ReceiptNumber = asString(item.Value)
			case itemPhoneNumber:
				rawPhone = asString(item.Value)
			case itemAmount:
				cb.Amount = asDecimal(item.Value)
			case itemTransactionDate:
				rawDate = asString(item.Value)
			}
		}
		cb.PayerReference = NormalizePhone(rawPhone)
		cb.TransactionDate = FormatTimestamp(rawDate)
	}

	return cb, nil
}

// NormalizePhone reduces a raw phone string to its last nine characters and
// prepends the country code, so "0712345678", "712345678" and
// "254712345678" all canonicalize to "254712345678". An empty input stays
// empty: no reference is better than a fabricated one.
func NormalizePhone(raw string) string {
	if raw == "" {
		return ""
	}
	if len(raw) > significantDigits {
		raw = raw[len(raw)-significantDigits:]
	}
	return countryCodePrefix + raw
}

// FormatTimestamp reformats the provider's compact 14-digit local timestamp
// (YYYYMMDDHHMMSS) as YYYY-MM-DDTHH:MM:SS by fixed-offset slicing. The value
// is stored for audit only and never enters timestamp arithmetic, so no
// timezone conversion is attempted. Anything that is not 14 digits passes
// through unchanged.
func FormatTimestamp(raw string) string {
	if len(raw) != 14 || !allDigits(raw) {
		return raw
	}
	return fmt.Sprintf("%s-%s-%sT%s:%s:%s",
		raw[0:4], raw[4:6], raw[6:8], raw[8:10], raw[10:12], raw[12:14])
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// asString coerces a metadata value to a string. Phone numbers arrive as
// JSON numbers; decoding with UseNumber keeps their digits exact.
func asString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// asDecimal coerces a metadata value to a decimal amount. Unparseable
// values are treated as absent.
func asDecimal(v any) decimal.Decimal {
	switch val := v.(type) {
	case string:
		d, err := decimal.NewFromString(val)
		if err != nil {
			return decimal.Zero
		}
		return d
	case json.Number:
		d, err := decimal.NewFromString(val.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}
