package repository

import (
	"context"
	"errors"
	"time"

	"StorefrontAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewRepository struct {
	DB *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

// GetByProductAndUser returns the user's review for a product, or nil.
func (r *ReviewRepository) GetByProductAndUser(ctx context.Context, productID, authID int64) (*model.ReviewRating, error) {
	var rv model.ReviewRating
	query := `
		SELECT reviewid, productid, authid, subject, review, rating, ip, status, created_at, updated_at
		FROM review_ratings
		WHERE productid=$1 AND authid=$2
	`
	err := r.DB.QueryRow(ctx, query, productID, authID).Scan(
		&rv.ReviewID, &rv.ProductID, &rv.AuthID, &rv.Subject, &rv.Review,
		&rv.Rating, &rv.IP, &rv.Status, &rv.CreatedAt, &rv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) Create(ctx context.Context, rv *model.ReviewRating) (int64, error) {
	var id int64
	query := `
		INSERT INTO review_ratings (productid, authid, subject, review, rating, ip, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, true, $7, $7)
		RETURNING reviewid
	`
	err := r.DB.QueryRow(ctx, query, rv.ProductID, rv.AuthID, rv.Subject, rv.Review, rv.Rating, rv.IP, time.Now()).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ReviewRepository) Update(ctx context.Context, rv *model.ReviewRating) error {
	query := `UPDATE review_ratings SET subject=$1, review=$2, rating=$3, ip=$4, updated_at=$5 WHERE reviewid=$6`
	tag, err := r.DB.Exec(ctx, query, rv.Subject, rv.Review, rv.Rating, rv.IP, time.Now(), rv.ReviewID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("review not found")
	}
	return nil
}

// ListVisibleByProduct returns reviews shown on the product page (status=true).
func (r *ReviewRepository) ListVisibleByProduct(ctx context.Context, productID int64) ([]model.ReviewRating, error) {
	query := `
		SELECT reviewid, productid, authid, subject, review, rating, ip, status, created_at, updated_at
		FROM review_ratings
		WHERE productid=$1 AND status=true
		ORDER BY updated_at DESC
	`
	rows, err := r.DB.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.ReviewRating
	for rows.Next() {
		var rv model.ReviewRating
		if err := rows.Scan(
			&rv.ReviewID, &rv.ProductID, &rv.AuthID, &rv.Subject, &rv.Review,
			&rv.Rating, &rv.IP, &rv.Status, &rv.CreatedAt, &rv.UpdatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, rv)
	}
	return list, nil
}

// Aggregate computes the average rating and review count over visible reviews.
func (r *ReviewRepository) Aggregate(ctx context.Context, productID int64) (avg float64, count int, err error) {
	query := `SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM review_ratings WHERE productid=$1 AND status=true`
	if err := r.DB.QueryRow(ctx, query, productID).Scan(&avg, &count); err != nil {
		return 0, 0, err
	}
	return avg, count, nil
}
