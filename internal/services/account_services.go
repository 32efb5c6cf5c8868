package services

import (
	"context"
	"errors"

	"StorefrontAPI/internal/model"
	"StorefrontAPI/internal/repository"
)

type AccountService struct {
	Repo     *repository.AccountRepository
	AuthRepo *repository.AuthRepository
}

func NewAccountService(r *repository.AccountRepository, ar *repository.AuthRepository) *AccountService {
	return &AccountService{Repo: r, AuthRepo: ar}
}

func (s *AccountService) Get(ctx context.Context, authID int64) (*model.Account, error) {
	a, err := s.Repo.GetByAuthID(ctx, authID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, errors.New("account not found")
	}
	return a, nil
}

func (s *AccountService) Update(ctx context.Context, a *model.Account) error {
	return s.Repo.Update(ctx, a)
}

// CheckoutPrefill returns the billing defaults shown on the checkout form:
// the saved profile plus the login email.
func (s *AccountService) CheckoutPrefill(ctx context.Context, authID int64) (*model.Account, string, error) {
	a, err := s.Get(ctx, authID)
	if err != nil {
		return nil, "", err
	}
	u, err := s.AuthRepo.GetByID(ctx, authID)
	if err != nil {
		return nil, "", err
	}
	return a, u.Email, nil
}
