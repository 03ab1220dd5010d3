package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mpesa-reconciler/internal/controller/apperror"
	"mpesa-reconciler/pkg/logger"
)

// ReconcileService matches provider callbacks against stored payments and
// applies the resulting state transition.
//
// The lookup strategy is a strict priority order, first hit wins:
//
//  1. checkout request ID, exact, no status or age filter;
//  2. normalized phone + exact amount, pending rows only, created within
//     the match window, newest first;
//  3. for successful callbacks carrying phone, amount and receipt: create
//     the row the initiation flow failed to pre-create;
//  4. otherwise the callback is unresolvable and the provider's redelivery
//     is the only recovery path.
//
// The weak key exists to cover the race where the callback outruns the
// initiation flow persisting the checkout request ID, so it is time-boxed
// and restricted to rows still pending.
type ReconcileService struct {
	repo        PaymentRepo
	matchWindow time.Duration
	l           *logger.Logger
}

func NewReconcileService(repo PaymentRepo, matchWindow time.Duration, l *logger.Logger) *ReconcileService {
	return &ReconcileService{
		repo:        repo,
		matchWindow: matchWindow,
		l:           l,
	}
}

// MatchWindow reports the configured weak-key recency bound.
func (s *ReconcileService) MatchWindow() time.Duration {
	return s.matchWindow
}

// ProcessCallback resolves cb to a payment row and applies the update.
// An OutcomeUnresolvable resolution is a legitimate result, not an error;
// errors are reserved for store failures.
func (s *ReconcileService) ProcessCallback(ctx context.Context, cb Callback) (Resolution, error) {
	if cb.CheckoutRequestID != "" {
		p, err := s.repo.GetByCheckoutRequestID(ctx, cb.CheckoutRequestID)
		switch {
		case err == nil:
			return s.apply(ctx, p.ID, MatchByCheckoutRequestID, cb)
		case !errors.Is(err, apperror.ErrPaymentNotFound):
			return Resolution{}, fmt.Errorf("lookup by checkout request id: %w", err)
		}
	}

	if cb.PayerReference != "" && !cb.Amount.IsZero() {
		since := time.Now().Add(-s.matchWindow)
		p, err := s.repo.FindRecentPending(ctx, cb.PayerReference, cb.Amount, since)
		switch {
		case err == nil:
			return s.apply(ctx, p.ID, MatchByPhoneAndAmount, cb)
		case !errors.Is(err, apperror.ErrPaymentNotFound):
			return Resolution{}, fmt.Errorf("lookup by phone and amount: %w", err)
		}
	}

	if s.canCreate(cb) {
		return s.createFromCallback(ctx, cb)
	}

	s.l.InfoCtx(ctx, "Unresolvable callback: merchant_request_id=%s checkout_request_id=%s result_code=%d",
		cb.MerchantRequestID, cb.CheckoutRequestID, cb.ResultCode)
	return Resolution{Outcome: OutcomeUnresolvable}, nil
}

func (s *ReconcileService) apply(ctx context.Context, id string, method MatchMethod, cb Callback) (Resolution, error) {
	if err := s.repo.ApplyCallback(ctx, id, cb); err != nil {
		return Resolution{}, fmt.Errorf("apply callback to payment %s: %w", id, err)
	}
	return Resolution{Outcome: OutcomeMatched, PaymentID: id, Method: method}, nil
}

// canCreate gates fallback creation: only successful callbacks that are
// fully identified may materialize a row. Failed callbacks with no match
// stay unresolvable; a "failed" row with no initiating context would just
// pollute the store.
func (s *ReconcileService) canCreate(cb Callback) bool {
	return cb.Success() && cb.PayerReference != "" && !cb.Amount.IsZero() && cb.ReceiptNumber != ""
}

// createFromCallback inserts the row and applies the callback metadata in
// one transaction, so a failed metadata write rolls the insert back and no
// partially recorded row can persist.
func (s *ReconcileService) createFromCallback(ctx context.Context, cb Callback) (Resolution, error) {
	var id string
	err := s.repo.InTransaction(ctx, func(tx TxPaymentRepo) error {
		var err error
		id, err = tx.Create(ctx, NewPayment{
			PayerReference: cb.PayerReference,
			Amount:         cb.Amount,
			Status:         StatusCompleted,
			Description:    FallbackDescription,
		})
		if err != nil {
			return fmt.Errorf("create payment from callback: %w", err)
		}

		if err := tx.ApplyCallback(ctx, id, cb); err != nil {
			return fmt.Errorf("apply callback to created payment: %w", err)
		}
		return nil
	})
	if err != nil {
		return Resolution{}, err
	}

	s.l.InfoCtx(ctx, "Created payment %s from unmatched successful callback: receipt=%s", id, cb.ReceiptNumber)
	return Resolution{Outcome: OutcomeCreated, PaymentID: id, Method: MatchByNewRecord}, nil
}
