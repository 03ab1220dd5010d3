//go:build integration
// +build integration

package payment_repo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"mpesa-reconciler/internal/controller/apperror"
	"mpesa-reconciler/internal/domain/payment"
	payment_repo "mpesa-reconciler/internal/repo/payment"
	"mpesa-reconciler/pkg/logger"
	"mpesa-reconciler/pkg/pointers"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const matchWindow = 30 * time.Minute

func newService() (*payment.ReconcileService, payment.PaymentRepo) {
	repo := payment_repo.NewPgPaymentRepo(pool)
	return payment.NewReconcileService(repo, matchWindow, logger.New(logger.Options{Level: "error"})), repo
}

func TestFindRecentPending_WindowAndStatus(t *testing.T) {
	ctx := context.Background()
	amount := decimal.NewFromInt(100)

	tests := []struct {
		name     string
		seed     []seedRow
		wantHit  bool
		wantSeed int // index into seed of the expected match
	}{
		{
			name: "finds pending row created inside the window",
			seed: []seedRow{
				{Msisdn: "254708374149", Amount: "100", Status: pointers.Ptr("pending"), CreatedAt: time.Now().Add(-29 * time.Minute)},
			},
			wantHit:  true,
			wantSeed: 0,
		},
		{
			name: "ignores pending row created before the window",
			seed: []seedRow{
				{Msisdn: "254708374149", Amount: "100", Status: pointers.Ptr("pending"), CreatedAt: time.Now().Add(-31 * time.Minute)},
			},
			wantHit: false,
		},
		{
			name: "skips completed row in favor of older pending one",
			seed: []seedRow{
				{Msisdn: "254708374149", Amount: "100", Status: pointers.Ptr("completed"), CreatedAt: time.Now().Add(-1 * time.Minute)},
				{Msisdn: "254708374149", Amount: "100", Status: pointers.Ptr("pending"), CreatedAt: time.Now().Add(-10 * time.Minute)},
			},
			wantHit:  true,
			wantSeed: 1,
		},
		{
			name: "treats NULL status as pending",
			seed: []seedRow{
				{Msisdn: "254708374149", Amount: "100", Status: nil, CreatedAt: time.Now().Add(-5 * time.Minute)},
			},
			wantHit:  true,
			wantSeed: 0,
		},
		{
			name: "prefers the newest of several pending candidates",
			seed: []seedRow{
				{Msisdn: "254708374149", Amount: "100", Status: pointers.Ptr("pending"), CreatedAt: time.Now().Add(-20 * time.Minute)},
				{Msisdn: "254708374149", Amount: "100", Status: pointers.Ptr("pending"), CreatedAt: time.Now().Add(-2 * time.Minute)},
			},
			wantHit:  true,
			wantSeed: 1,
		},
		{
			name: "requires the amount to match exactly",
			seed: []seedRow{
				{Msisdn: "254708374149", Amount: "100.50", Status: pointers.Ptr("pending"), CreatedAt: time.Now().Add(-5 * time.Minute)},
			},
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			truncate(t)

			ids := make([]string, len(tt.seed))
			for i, row := range tt.seed {
				ids[i] = seedPayment(t, row)
			}

			_, repo := newService()
			got, err := repo.FindRecentPending(ctx, "254708374149", amount, time.Now().Add(-matchWindow))

			if !tt.wantHit {
				require.ErrorIs(t, err, apperror.ErrPaymentNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, ids[tt.wantSeed], got.ID)
		})
	}
}

func TestProcessCallback_StrongKeyIgnoresStatusAndAge(t *testing.T) {
	truncate(t)
	ctx := context.Background()

	// A stale completed row holding the checkout request ID must win over a
	// fresh pending row that the weak key would pick.
	strongID := seedPayment(t, seedRow{
		Msisdn:            "254711111111",
		Amount:            "1",
		Status:            pointers.Ptr("completed"),
		CheckoutRequestID: pointers.Ptr("ws_CO_191220191020363925"),
		CreatedAt:         time.Now().Add(-48 * time.Hour),
	})
	seedPayment(t, seedRow{
		Msisdn:    "254708374149",
		Amount:    "100",
		Status:    pointers.Ptr("pending"),
		CreatedAt: time.Now().Add(-1 * time.Minute),
	})

	service, _ := newService()
	res, err := service.ProcessCallback(ctx, successCallback())
	require.NoError(t, err)

	assert.Equal(t, payment.OutcomeMatched, res.Outcome)
	assert.Equal(t, payment.MatchByCheckoutRequestID, res.Method)
	assert.Equal(t, strongID, res.PaymentID)
}

func TestProcessCallback_IdempotentReplay(t *testing.T) {
	truncate(t)
	ctx := context.Background()

	seedPayment(t, seedRow{
		Msisdn:    "254708374149",
		Amount:    "100",
		Status:    pointers.Ptr("pending"),
		CreatedAt: time.Now().Add(-5 * time.Minute),
	})

	service, repo := newService()
	cb := successCallback()

	first, err := service.ProcessCallback(ctx, cb)
	require.NoError(t, err)
	require.Equal(t, payment.OutcomeMatched, first.Outcome)

	afterFirst, err := repo.GetByCheckoutRequestID(ctx, cb.CheckoutRequestID)
	require.NoError(t, err)

	// Redelivery resolves via the strong key now that the ID is stored.
	second, err := service.ProcessCallback(ctx, cb)
	require.NoError(t, err)
	assert.Equal(t, payment.OutcomeMatched, second.Outcome)
	assert.Equal(t, payment.MatchByCheckoutRequestID, second.Method)
	assert.Equal(t, first.PaymentID, second.PaymentID)

	afterSecond, err := repo.GetByCheckoutRequestID(ctx, cb.CheckoutRequestID)
	require.NoError(t, err)

	assert.Equal(t, afterFirst.Status, afterSecond.Status)
	assert.Equal(t, afterFirst.ReceiptNumber, afterSecond.ReceiptNumber)
	assert.Equal(t, afterFirst.TransactionDate, afterSecond.TransactionDate)
	assert.Equal(t, afterFirst.ResultCode, afterSecond.ResultCode)
	assert.Equal(t, afterFirst.MerchantRequestID, afterSecond.MerchantRequestID)
	assert.Equal(t, 1, countPayments(t, "checkout_request_id = $1", cb.CheckoutRequestID))
}

func TestProcessCallback_FailureKeepsStoredReceipt(t *testing.T) {
	truncate(t)
	ctx := context.Background()

	id := seedPayment(t, seedRow{
		Msisdn:            "254708374149",
		Amount:            "100",
		Status:            pointers.Ptr("completed"),
		CheckoutRequestID: pointers.Ptr("ws_CO_191220191020363925"),
		ReceiptNumber:     pointers.Ptr("NLJ7RT61SV"),
		CreatedAt:         time.Now().Add(-5 * time.Minute),
	})

	service, repo := newService()

	// A late failure callback overwrites the status but carries no metadata;
	// the stored receipt must survive.
	res, err := service.ProcessCallback(ctx, failureCallback())
	require.NoError(t, err)
	require.Equal(t, payment.OutcomeMatched, res.Outcome)
	require.Equal(t, id, res.PaymentID)

	got, err := repo.GetByCheckoutRequestID(ctx, "ws_CO_191220191020363925")
	require.NoError(t, err)

	assert.Equal(t, payment.StatusFailed, got.Status)
	require.NotNil(t, got.ReceiptNumber)
	assert.Equal(t, "NLJ7RT61SV", *got.ReceiptNumber)
	require.NotNil(t, got.ResultCode)
	assert.Equal(t, 1032, *got.ResultCode)
}

func TestProcessCallback_FallbackCreation(t *testing.T) {
	ctx := context.Background()

	t.Run("successful callback with full metadata creates a completed row", func(t *testing.T) {
		truncate(t)

		service, repo := newService()
		cb := successCallback()

		res, err := service.ProcessCallback(ctx, cb)
		require.NoError(t, err)

		assert.Equal(t, payment.OutcomeCreated, res.Outcome)
		assert.Equal(t, payment.MatchByNewRecord, res.Method)

		got, err := repo.GetByCheckoutRequestID(ctx, cb.CheckoutRequestID)
		require.NoError(t, err)
		assert.Equal(t, res.PaymentID, got.ID)
		assert.Equal(t, payment.StatusCompleted, got.Status)
		assert.Equal(t, payment.FallbackDescription, got.Description)
		assert.Equal(t, "254708374149", got.PayerReference)
		assert.True(t, got.ExpectedAmount.Equal(cb.Amount))
		require.NotNil(t, got.ReceiptNumber)
		assert.Equal(t, "NLJ7RT61SV", *got.ReceiptNumber)
		assert.Equal(t, 1, countPayments(t, "1=1"))
	})

	t.Run("failed callback never creates a row", func(t *testing.T) {
		truncate(t)

		service, _ := newService()

		res, err := service.ProcessCallback(ctx, failureCallback())
		require.NoError(t, err)

		assert.Equal(t, payment.OutcomeUnresolvable, res.Outcome)
		assert.Equal(t, 0, countPayments(t, "1=1"))
	})
}

func TestProcessCallback_ConcurrentDelivery(t *testing.T) {
	truncate(t)
	ctx := context.Background()

	// Two deliveries of the same callback racing through fallback creation:
	// the partial unique index on checkout_request_id guarantees at most one
	// row ends up holding the ID, whichever interleaving wins.
	service, _ := newService()
	cb := successCallback()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = service.ProcessCallback(ctx, cb)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}
	require.GreaterOrEqual(t, succeeded, 1, "at least one delivery must resolve")
	assert.Equal(t, 1, countPayments(t, "checkout_request_id = $1", cb.CheckoutRequestID))
}
