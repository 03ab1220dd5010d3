package payment_repo

import (
	"fmt"

	"mpesa-reconciler/internal/domain/payment"

	"github.com/jackc/pgx/v5"
)

// paymentColumns is the select list shared by every lookup, in scan order.
var paymentColumns = []string{
	"id",
	"msisdn",
	"amount",
	"status",
	"description",
	"mpesa_receipt_number",
	"transaction_date",
	"result_code",
	"result_description",
	"merchant_request_id",
	"checkout_request_id",
	"created_at",
	"updated_at",
}

func scanPayment(row pgx.Row) (payment.Payment, error) {
	var p payment.Payment
	var rawStatus *string

	err := row.Scan(
		&p.ID,
		&p.PayerReference,
		&p.ExpectedAmount,
		&rawStatus,
		&p.Description,
		&p.ReceiptNumber,
		&p.TransactionDate,
		&p.ResultCode,
		&p.ResultDescription,
		&p.MerchantRequestID,
		&p.CheckoutRequestID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return payment.Payment{}, fmt.Errorf("scan payment row: %w", err)
	}

	p.Status = statusFromColumn(rawStatus)
	return p, nil
}

// statusFromColumn maps the nullable status column to a domain status.
// NULL and empty both mean the row is still awaiting its first callback.
func statusFromColumn(raw *string) payment.Status {
	if raw == nil || *raw == "" {
		return payment.StatusPending
	}
	return payment.Status(*raw)
}
