package repository

import (
	"context"
	"errors"
	"time"

	"StorefrontAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CartRepository persists carts and cart items. Item ownership is keyed by
// exactly one of (authid, cartid): authenticated rows carry authid, guest
// rows carry the session cart's id. Queries take both as nullable params and
// let SQL null-comparison rules skip the absent side.
type CartRepository struct {
	DB *pgxpool.Pool
}

func NewCartRepository(db *pgxpool.Pool) *CartRepository {
	return &CartRepository{DB: db}
}

func (r *CartRepository) GetCartIDByToken(ctx context.Context, token string) (int64, error) {
	var id int64
	query := `SELECT cartid FROM carts WHERE cart_token=$1`
	if err := r.DB.QueryRow(ctx, query, token).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *CartRepository) CreateCart(ctx context.Context, token string) (int64, error) {
	var id int64
	query := `INSERT INTO carts (cart_token, date_added) VALUES ($1, $2) RETURNING cartid`
	if err := r.DB.QueryRow(ctx, query, token, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// FindActiveItem returns the active cart item for (product, owner), or nil.
func (r *CartRepository) FindActiveItem(ctx context.Context, productID int64, authID, cartID *int64) (*model.CartItem, error) {
	var it model.CartItem
	query := `
		SELECT cartitemid, productid, authid, cartid, quantity, is_active
		FROM cart_items
		WHERE productid=$1 AND (authid=$2 OR cartid=$3) AND is_active=true
	`
	err := r.DB.QueryRow(ctx, query, productID, authID, cartID).Scan(
		&it.CartItemID, &it.ProductID, &it.AuthID, &it.CartID, &it.Quantity, &it.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &it, nil
}

// GetItem returns the active cart item matching product, item id and owner, or nil.
func (r *CartRepository) GetItem(ctx context.Context, productID, cartItemID int64, authID, cartID *int64) (*model.CartItem, error) {
	var it model.CartItem
	query := `
		SELECT cartitemid, productid, authid, cartid, quantity, is_active
		FROM cart_items
		WHERE cartitemid=$1 AND productid=$2 AND (authid=$3 OR cartid=$4) AND is_active=true
	`
	err := r.DB.QueryRow(ctx, query, cartItemID, productID, authID, cartID).Scan(
		&it.CartItemID, &it.ProductID, &it.AuthID, &it.CartID, &it.Quantity, &it.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) InsertItem(ctx context.Context, productID int64, authID, cartID *int64, qty int) (int64, error) {
	var id int64
	query := `INSERT INTO cart_items (productid, authid, cartid, quantity, is_active) VALUES ($1, $2, $3, $4, true) RETURNING cartitemid`
	if err := r.DB.QueryRow(ctx, query, productID, authID, cartID, qty).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// AddQuantity shifts an item's quantity by delta (negative to decrement).
func (r *CartRepository) AddQuantity(ctx context.Context, cartItemID int64, delta int) error {
	query := `UPDATE cart_items SET quantity = quantity + $1 WHERE cartitemid=$2`
	tag, err := r.DB.Exec(ctx, query, delta, cartItemID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("cart item not found")
	}
	return nil
}

func (r *CartRepository) DeleteItem(ctx context.Context, cartItemID int64) error {
	query := `DELETE FROM cart_items WHERE cartitemid=$1`
	_, err := r.DB.Exec(ctx, query, cartItemID)
	return err
}

// AttachVariations links chosen variations to a fresh cart item.
func (r *CartRepository) AttachVariations(ctx context.Context, cartItemID int64, variationIDs []int64) error {
	for _, vid := range variationIDs {
		query := `INSERT INTO cart_item_variations (cartitemid, variationid) VALUES ($1, $2) ON CONFLICT DO NOTHING`
		if _, err := r.DB.Exec(ctx, query, cartItemID, vid); err != nil {
			return err
		}
	}
	return nil
}

func (r *CartRepository) variationsForItem(ctx context.Context, cartItemID int64) ([]model.Variation, error) {
	query := `
		SELECT v.variationid, v.productid, v.variation_category, v.variation_value, v.is_active
		FROM cart_item_variations civ
		JOIN variations v ON v.variationid = civ.variationid
		WHERE civ.cartitemid=$1
		ORDER BY v.variation_category
	`
	rows, err := r.DB.Query(ctx, query, cartItemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Variation
	for rows.Next() {
		var v model.Variation
		if err := rows.Scan(&v.VariationID, &v.ProductID, &v.VariationCategory, &v.VariationValue, &v.IsActive); err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}

// ListLines returns the owner's active cart joined with current product data.
func (r *CartRepository) ListLines(ctx context.Context, authID, cartID *int64) ([]model.CartLine, error) {
	query := `
		SELECT ci.cartitemid, ci.productid, p.productname, p.price, ci.quantity
		FROM cart_items ci
		JOIN products p ON p.productid = ci.productid
		WHERE (ci.authid=$1 OR ci.cartid=$2) AND ci.is_active=true
		ORDER BY ci.productid
	`
	rows, err := r.DB.Query(ctx, query, authID, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []model.CartLine
	for rows.Next() {
		var l model.CartLine
		if err := rows.Scan(&l.CartItemID, &l.ProductID, &l.ProductName, &l.Price, &l.Quantity); err != nil {
			return nil, err
		}
		l.SubTotal = l.Price * int64(l.Quantity)
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range lines {
		vars, err := r.variationsForItem(ctx, lines[i].CartItemID)
		if err != nil {
			return nil, err
		}
		lines[i].Variations = vars
	}
	return lines, nil
}

// ListLinesByAuthTx is the confirmation-time read of the account's cart,
// executed inside the finalization transaction so the snapshot and the
// deletes see the same rows.
func (r *CartRepository) ListLinesByAuthTx(ctx context.Context, tx pgx.Tx, authID int64) ([]model.CartLine, error) {
	query := `
		SELECT ci.cartitemid, ci.productid, p.productname, p.price, ci.quantity
		FROM cart_items ci
		JOIN products p ON p.productid = ci.productid
		WHERE ci.authid=$1 AND ci.is_active=true
		ORDER BY ci.productid
	`
	rows, err := tx.Query(ctx, query, authID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []model.CartLine
	for rows.Next() {
		var l model.CartLine
		if err := rows.Scan(&l.CartItemID, &l.ProductID, &l.ProductName, &l.Price, &l.Quantity); err != nil {
			return nil, err
		}
		l.SubTotal = l.Price * int64(l.Quantity)
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// ClearByAuthTx removes all of the account's cart items inside the
// confirmation transaction.
func (r *CartRepository) ClearByAuthTx(ctx context.Context, tx pgx.Tx, authID int64) error {
	query := `DELETE FROM cart_items WHERE authid=$1`
	_, err := tx.Exec(ctx, query, authID)
	return err
}

// ListItemsByCart returns the guest cart's active items (for login merge).
func (r *CartRepository) ListItemsByCart(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	query := `
		SELECT cartitemid, productid, authid, cartid, quantity, is_active
		FROM cart_items
		WHERE cartid=$1 AND is_active=true
	`
	rows, err := r.DB.Query(ctx, query, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.CartItem
	for rows.Next() {
		var it model.CartItem
		if err := rows.Scan(&it.CartItemID, &it.ProductID, &it.AuthID, &it.CartID, &it.Quantity, &it.IsActive); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ReassignItemToAuth flips a guest row to account ownership.
func (r *CartRepository) ReassignItemToAuth(ctx context.Context, cartItemID, authID int64) error {
	query := `UPDATE cart_items SET authid=$1, cartid=NULL WHERE cartitemid=$2`
	_, err := r.DB.Exec(ctx, query, authID, cartItemID)
	return err
}

// DeleteItemsByCart drops every item of a guest cart.
func (r *CartRepository) DeleteItemsByCart(ctx context.Context, cartID int64) error {
	query := `DELETE FROM cart_items WHERE cartid=$1`
	_, err := r.DB.Exec(ctx, query, cartID)
	return err
}
