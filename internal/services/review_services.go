package services

import (
	"context"
	"errors"
	"strings"

	"StorefrontAPI/internal/model"
	"StorefrontAPI/internal/repository"
)

type ReviewService struct {
	Repo        *repository.ReviewRepository
	ProductRepo *repository.ProductRepository
}

func NewReviewService(rr *repository.ReviewRepository, pr *repository.ProductRepository) *ReviewService {
	return &ReviewService{Repo: rr, ProductRepo: pr}
}

// Submit records a product review. One review per (account, product): a
// resubmission updates the existing row instead of adding another.
func (s *ReviewService) Submit(ctx context.Context, authID, productID int64, subject, review string, rating float64, ip string) error {
	if rating < 0.5 || rating > 5 {
		return errors.New("rating must be between 0.5 and 5")
	}
	subject = strings.TrimSpace(subject)
	review = strings.TrimSpace(review)

	if _, err := s.ProductRepo.GetByID(ctx, productID); err != nil {
		return ErrProductNotFound
	}

	var ipPtr *string
	if ip != "" {
		ipPtr = &ip
	}

	existing, err := s.Repo.GetByProductAndUser(ctx, productID, authID)
	if err != nil {
		return err
	}
	if existing != nil {
		existing.Subject = subject
		existing.Review = review
		existing.Rating = rating
		existing.IP = ipPtr
		return s.Repo.Update(ctx, existing)
	}

	_, err = s.Repo.Create(ctx, &model.ReviewRating{
		ProductID: productID,
		AuthID:    authID,
		Subject:   subject,
		Review:    review,
		Rating:    rating,
		IP:        ipPtr,
	})
	return err
}

func (s *ReviewService) ListForProduct(ctx context.Context, productID int64) ([]model.ReviewRating, error) {
	return s.Repo.ListVisibleByProduct(ctx, productID)
}
