package services

import (
	"context"
	"errors"
	"fmt"

	"StorefrontAPI/internal/model"
	"StorefrontAPI/internal/repository"

	"github.com/jackc/pgx/v5"
)

// TaxRatePercent is the flat tax applied to the cart subtotal.
const TaxRatePercent = 2

// ComputeTotals folds cart lines into the running total block. Pure and
// order-independent: permuting lines never changes the result.
func ComputeTotals(lines []model.CartLine) model.CartTotals {
	var t model.CartTotals
	for _, l := range lines {
		t.SubTotal += l.Price * int64(l.Quantity)
		t.Quantity += l.Quantity
	}
	t.Tax = float64(TaxRatePercent*t.SubTotal) / 100
	t.GrandTotal = float64(t.SubTotal) + t.Tax
	return t
}

type CartService struct {
	Repo        *repository.CartRepository
	ProductRepo *repository.ProductRepository
}

func NewCartService(r *repository.CartRepository, pr *repository.ProductRepository) *CartService {
	return &CartService{Repo: r, ProductRepo: pr}
}

// resolveOwner maps a CartOwner onto the nullable (authid, cartid) pair the
// repository keys on. For guests, createCart controls whether a missing cart
// row is created (adds) or left absent (reads/decrements on an empty cart).
func (s *CartService) resolveOwner(ctx context.Context, owner model.CartOwner, createCart bool) (authID, cartID *int64, err error) {
	if owner.IsAccount() {
		return &owner.AuthID, nil, nil
	}
	if owner.CartToken == "" {
		return nil, nil, errors.New("no cart owner in request")
	}
	id, err := s.Repo.GetCartIDByToken(ctx, owner.CartToken)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, err
		}
		if !createCart {
			return nil, nil, nil // guest without a cart yet
		}
		id, err = s.Repo.CreateCart(ctx, owner.CartToken)
		if err != nil {
			return nil, nil, err
		}
	}
	return nil, &id, nil
}

// AddItem puts one unit of a product into the owner's cart: an existing
// active row for (product, owner) is incremented, otherwise a fresh row with
// quantity 1 is created and the chosen variations attached to it.
func (s *CartService) AddItem(ctx context.Context, owner model.CartOwner, productID int64, variationIDs []int64) error {
	product, err := s.ProductRepo.GetByID(ctx, productID)
	if err != nil {
		return ErrProductNotFound
	}
	if !product.IsAvailable {
		return errors.New("product is unavailable")
	}

	authID, cartID, err := s.resolveOwner(ctx, owner, true)
	if err != nil {
		return err
	}

	existing, err := s.Repo.FindActiveItem(ctx, productID, authID, cartID)
	if err != nil {
		return err
	}
	if existing != nil {
		return s.Repo.AddQuantity(ctx, existing.CartItemID, 1)
	}

	itemID, err := s.Repo.InsertItem(ctx, productID, authID, cartID, 1)
	if err != nil {
		return err
	}
	if len(variationIDs) > 0 {
		vars, err := s.ProductRepo.GetActiveVariationsByIDs(ctx, productID, variationIDs)
		if err != nil {
			return err
		}
		ids := make([]int64, 0, len(vars))
		for _, v := range vars {
			ids = append(ids, v.VariationID)
		}
		if err := s.Repo.AttachVariations(ctx, itemID, ids); err != nil {
			return err
		}
	}
	return nil
}

// DecrementItem lowers an item's quantity by one; at quantity 1 the row is
// deleted instead, so quantity never drops below 1 on a surviving row.
func (s *CartService) DecrementItem(ctx context.Context, owner model.CartOwner, productID, cartItemID int64) error {
	authID, cartID, err := s.resolveOwner(ctx, owner, false)
	if err != nil {
		return err
	}
	if authID == nil && cartID == nil {
		return ErrCartItemNotFound
	}

	item, err := s.Repo.GetItem(ctx, productID, cartItemID, authID, cartID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrCartItemNotFound
	}

	if item.Quantity > 1 {
		return s.Repo.AddQuantity(ctx, item.CartItemID, -1)
	}
	return s.Repo.DeleteItem(ctx, item.CartItemID)
}

// RemoveItem deletes the cart row outright.
func (s *CartService) RemoveItem(ctx context.Context, owner model.CartOwner, productID, cartItemID int64) error {
	authID, cartID, err := s.resolveOwner(ctx, owner, false)
	if err != nil {
		return err
	}
	if authID == nil && cartID == nil {
		return ErrCartItemNotFound
	}

	item, err := s.Repo.GetItem(ctx, productID, cartItemID, authID, cartID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrCartItemNotFound
	}
	return s.Repo.DeleteItem(ctx, item.CartItemID)
}

// GetCart returns the owner's cart lines with computed totals.
func (s *CartService) GetCart(ctx context.Context, owner model.CartOwner) (*model.CartResponse, error) {
	authID, cartID, err := s.resolveOwner(ctx, owner, false)
	if err != nil {
		return nil, err
	}
	if authID == nil && cartID == nil {
		return &model.CartResponse{Items: []model.CartLine{}}, nil
	}

	lines, err := s.Repo.ListLines(ctx, authID, cartID)
	if err != nil {
		return nil, err
	}
	return &model.CartResponse{
		Items:  lines,
		Totals: ComputeTotals(lines),
	}, nil
}

// Merge strategies a login may request for a guest cart.
const (
	MergeStrategyMerge   = "merge"
	MergeStrategyDiscard = "discard"
)

// MergeGuestCart folds a guest session cart into an account at login time.
// The caller must pick a strategy explicitly; there is no implicit merge.
func (s *CartService) MergeGuestCart(ctx context.Context, cartToken string, authID int64, strategy string) error {
	if strategy != MergeStrategyMerge && strategy != MergeStrategyDiscard {
		return fmt.Errorf("unknown cart merge strategy %q", strategy)
	}

	cartID, err := s.Repo.GetCartIDByToken(ctx, cartToken)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil // nothing to merge
		}
		return err
	}

	if strategy == MergeStrategyDiscard {
		return s.Repo.DeleteItemsByCart(ctx, cartID)
	}

	items, err := s.Repo.ListItemsByCart(ctx, cartID)
	if err != nil {
		return err
	}
	for _, it := range items {
		existing, err := s.Repo.FindActiveItem(ctx, it.ProductID, &authID, nil)
		if err != nil {
			return err
		}
		if existing != nil {
			if err := s.Repo.AddQuantity(ctx, existing.CartItemID, it.Quantity); err != nil {
				return err
			}
			if err := s.Repo.DeleteItem(ctx, it.CartItemID); err != nil {
				return err
			}
			continue
		}
		if err := s.Repo.ReassignItemToAuth(ctx, it.CartItemID, authID); err != nil {
			return err
		}
	}
	return nil
}
