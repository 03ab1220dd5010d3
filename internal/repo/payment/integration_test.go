//go:build integration
// +build integration

package payment_repo_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"mpesa-reconciler/internal/domain/payment"
	"mpesa-reconciler/internal/testinfra"
	"mpesa-reconciler/pkg/postgres"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	pool      *postgres.Postgres
	container *testinfra.PostgresContainer
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := testinfra.NewPostgres(ctx)
	if err != nil {
		panic(fmt.Sprintf("Failed to start postgres container: %v", err))
	}

	container = pgContainer
	pool = pgContainer.Pool

	code := m.Run()

	pgContainer.Cleanup(ctx)
	os.Exit(code)
}

func truncate(t *testing.T) {
	t.Helper()
	require.NoError(t, container.Truncate(context.Background()))
}

// seedRow inserts a payment row directly, bypassing the repository, so
// tests control every column including a NULL status.
type seedRow struct {
	Msisdn            string
	Amount            string
	Status            *string
	CheckoutRequestID *string
	ReceiptNumber     *string
	CreatedAt         time.Time
}

func seedPayment(t *testing.T, row seedRow) string {
	t.Helper()

	id := uuid.NewString()
	_, err := pool.Pool.Exec(context.Background(),
		`INSERT INTO payments (id, msisdn, amount, status, description, checkout_request_id, mpesa_receipt_number, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`,
		id, row.Msisdn, row.Amount, row.Status, "Test payment", row.CheckoutRequestID, row.ReceiptNumber, row.CreatedAt,
	)
	require.NoError(t, err)
	return id
}

func countPayments(t *testing.T, where string, args ...any) int {
	t.Helper()

	var count int
	err := pool.Pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM payments WHERE "+where, args...).Scan(&count)
	require.NoError(t, err)
	return count
}

func successCallback() payment.Callback {
	return payment.Callback{
		MerchantRequestID: "29115-34620561-1",
		CheckoutRequestID: "ws_CO_191220191020363925",
		ResultCode:        0,
		ResultDesc:        "The service request is processed successfully.",
		ReceiptNumber:     "NLJ7RT61SV",
		PayerReference:    "254708374149",
		Amount:            decimal.NewFromInt(100),
		TransactionDate:   "2019-12-19T10:21:15",
	}
}

func failureCallback() payment.Callback {
	return payment.Callback{
		MerchantRequestID: "29115-34620561-1",
		CheckoutRequestID: "ws_CO_191220191020363925",
		ResultCode:        1032,
		ResultDesc:        "Request cancelled by user.",
	}
}
