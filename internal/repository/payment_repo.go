package repository

import (
	"context"
	"errors"

	"StorefrontAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	DB *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

// CreateCompletedTx inserts the payment row inside the confirmation
// transaction. Payments only ever exist for confirmed orders, so they are
// born with status Completed.
func (r *PaymentRepository) CreateCompletedTx(
	ctx context.Context,
	tx pgx.Tx,
	authID int64,
	externalRef string,
	method string,
	amount float64,
) (int64, error) {

	var paymentID int64
	q := `
		INSERT INTO payments (authid, external_ref, payment_method, amount_paid, status, created_at)
		VALUES ($1, $2, $3, $4, 'Completed', NOW())
		RETURNING paymentid
	`
	err := tx.QueryRow(ctx, q, authID, externalRef, method, amount).Scan(&paymentID)
	return paymentID, err
}

func (r *PaymentRepository) GetByID(ctx context.Context, paymentID int64) (*model.Payment, error) {
	var p model.Payment
	q := `
		SELECT paymentid, authid, external_ref, payment_method, amount_paid, status, created_at
		FROM payments
		WHERE paymentid=$1
	`
	err := r.DB.QueryRow(ctx, q, paymentID).Scan(
		&p.PaymentID, &p.AuthID, &p.ExternalRef, &p.PaymentMethod,
		&p.AmountPaid, &p.Status, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// GetByExternalRef returns the payment created for a gateway transaction id,
// or nil when the transaction was never finalized here.
func (r *PaymentRepository) GetByExternalRef(ctx context.Context, externalRef string) (*model.Payment, error) {
	var p model.Payment
	q := `
		SELECT paymentid, authid, external_ref, payment_method, amount_paid, status, created_at
		FROM payments
		WHERE external_ref=$1
	`
	err := r.DB.QueryRow(ctx, q, externalRef).Scan(
		&p.PaymentID, &p.AuthID, &p.ExternalRef, &p.PaymentMethod,
		&p.AmountPaid, &p.Status, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
