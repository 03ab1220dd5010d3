package payment_repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mpesa-reconciler/internal/controller/apperror"
	"mpesa-reconciler/internal/domain/payment"
	"mpesa-reconciler/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PgPaymentRepo is the main repository
type PgPaymentRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgPaymentRepo(pg *postgres.Postgres) payment.PaymentRepo {
	return &PgPaymentRepo{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

func (r *PgPaymentRepo) InTransaction(ctx context.Context, fn func(repo payment.TxPaymentRepo) error) error {
	return r.pg.InTransaction(ctx, func(tx postgres.Executor) error {
		txRepo := &repo{db: tx, builder: r.pg.Builder}
		return fn(txRepo)
	})
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func (r *repo) GetByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (payment.Payment, error) {
	sql, args, err := r.builder.Select(paymentColumns...).
		From("payments").
		Where(squirrel.Eq{"checkout_request_id": checkoutRequestID}).
		Limit(1).
		ToSql()
	if err != nil {
		return payment.Payment{}, fmt.Errorf("build checkout request id query: %w", err)
	}

	p, err := scanPayment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payment.Payment{}, apperror.ErrPaymentNotFound
		}
		return payment.Payment{}, fmt.Errorf("get payment by checkout request id: %w", err)
	}
	return p, nil
}

func (r *repo) FindRecentPending(ctx context.Context, payerReference string, amount decimal.Decimal, since time.Time) (payment.Payment, error) {
	sql, args, err := r.builder.Select(paymentColumns...).
		From("payments").
		Where(squirrel.Eq{"msisdn": payerReference}).
		Where(squirrel.Eq{"amount": amount}).
		Where(squirrel.Expr("(status IS NULL OR status = ?)", string(payment.StatusPending))).
		Where(squirrel.GtOrEq{"created_at": since}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return payment.Payment{}, fmt.Errorf("build pending payment query: %w", err)
	}

	p, err := scanPayment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payment.Payment{}, apperror.ErrPaymentNotFound
		}
		return payment.Payment{}, fmt.Errorf("find pending payment: %w", err)
	}
	return p, nil
}

func (r *repo) Create(ctx context.Context, p payment.NewPayment) (string, error) {
	id := uuid.NewString()
	now := time.Now()

	sql, args, err := r.builder.Insert("payments").
		Columns("id", "msisdn", "amount", "status", "description", "created_at", "updated_at").
		Values(id, p.PayerReference, p.Amount, string(p.Status), p.Description, now, now).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build insert query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return "", fmt.Errorf("create payment: %w", err)
	}
	return id, nil
}

// ApplyCallback is the idempotent write: status and result fields are pure
// overwrites keyed by row id, while receipt, transaction date and the
// request IDs keep their stored value when the callback carries an empty
// one (fill-in, don't blank). Replaying the same callback produces the
// same row.
func (r *repo) ApplyCallback(ctx context.Context, id string, cb payment.Callback) error {
	sql, args, err := r.builder.Update("payments").
		Set("status", string(cb.Status())).
		Set("result_code", cb.ResultCode).
		Set("result_description", cb.ResultDesc).
		Set("mpesa_receipt_number", squirrel.Expr("COALESCE(NULLIF(?, ''), mpesa_receipt_number)", cb.ReceiptNumber)).
		Set("transaction_date", squirrel.Expr("COALESCE(NULLIF(?, ''), transaction_date)", cb.TransactionDate)).
		Set("merchant_request_id", squirrel.Expr("COALESCE(NULLIF(?, ''), merchant_request_id)", cb.MerchantRequestID)).
		Set("checkout_request_id", squirrel.Expr("COALESCE(NULLIF(?, ''), checkout_request_id)", cb.CheckoutRequestID)).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("apply callback: %w", err)
	}
	return nil
}
