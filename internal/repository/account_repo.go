package repository

import (
	"context"
	"errors"
	"time"

	"StorefrontAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AccountRepository struct {
	DB *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{DB: db}
}

// Create inserts the empty billing profile for a fresh auth user.
func (r *AccountRepository) Create(ctx context.Context, authID int64) (int64, error) {
	var id int64
	query := `INSERT INTO accounts (authid, created_at) VALUES ($1, $2) RETURNING accountid`
	if err := r.DB.QueryRow(ctx, query, authID, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *AccountRepository) GetByAuthID(ctx context.Context, authID int64) (*model.Account, error) {
	var a model.Account
	query := `
		SELECT accountid, authid, first_name, last_name, phone,
		       address_line_1, address_line_2, country, state, city, created_at, deleted_at
		FROM accounts
		WHERE authid=$1 AND deleted_at IS NULL
	`
	err := r.DB.QueryRow(ctx, query, authID).Scan(
		&a.AccountID, &a.AuthID, &a.FirstName, &a.LastName, &a.Phone,
		&a.AddressLine1, &a.AddressLine2, &a.Country, &a.State, &a.City,
		&a.CreatedAt, &a.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepository) Update(ctx context.Context, a *model.Account) error {
	query := `
		UPDATE accounts
		SET first_name=$1, last_name=$2, phone=$3,
		    address_line_1=$4, address_line_2=$5, country=$6, state=$7, city=$8
		WHERE authid=$9 AND deleted_at IS NULL
	`
	tag, err := r.DB.Exec(ctx, query,
		a.FirstName, a.LastName, a.Phone,
		a.AddressLine1, a.AddressLine2, a.Country, a.State, a.City,
		a.AuthID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("account not found")
	}
	return nil
}
