package repository

import (
	"context"
	"errors"
	"time"

	"StorefrontAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

const orderColumns = `orderid, authid, order_number, first_name, last_name, phone, email,
	address_line_1, address_line_2, country, state, city, order_note,
	order_total, tax, ip, is_ordered, paymentid, created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(
		&o.OrderID, &o.AuthID, &o.OrderNumber, &o.FirstName, &o.LastName, &o.Phone, &o.Email,
		&o.AddressLine1, &o.AddressLine2, &o.Country, &o.State, &o.City, &o.OrderNote,
		&o.OrderTotal, &o.Tax, &o.IP, &o.IsOrdered, &o.PaymentID, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateTx inserts the billing snapshot with frozen totals and an empty
// order_number, returning the database-assigned id. The order number is
// stamped in a second statement because it is derived from this id.
func (r *OrderRepository) CreateTx(ctx context.Context, tx pgx.Tx, o *model.Order) (int64, error) {
	var id int64
	query := `
		INSERT INTO orders
			(authid, order_number, first_name, last_name, phone, email,
			 address_line_1, address_line_2, country, state, city, order_note,
			 order_total, tax, ip, is_ordered, created_at, updated_at)
		VALUES ($1, '', $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, false, $15, $15)
		RETURNING orderid
	`
	err := tx.QueryRow(ctx, query,
		o.AuthID, o.FirstName, o.LastName, o.Phone, o.Email,
		o.AddressLine1, o.AddressLine2, o.Country, o.State, o.City, o.OrderNote,
		o.OrderTotal, o.Tax, o.IP, time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// StampOrderNumberTx writes the derived order number onto the freshly
// inserted row.
func (r *OrderRepository) StampOrderNumberTx(ctx context.Context, tx pgx.Tx, orderID int64, orderNumber string) error {
	query := `UPDATE orders SET order_number=$1, updated_at=$2 WHERE orderid=$3`
	_, err := tx.Exec(ctx, query, orderNumber, time.Now(), orderID)
	return err
}

func (r *OrderRepository) GetByID(ctx context.Context, orderID int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE orderid=$1`
	o, err := scanOrder(r.DB.QueryRow(ctx, query, orderID))
	if err != nil {
		return nil, errors.New("order not found")
	}
	return o, nil
}

func (r *OrderRepository) GetByNumber(ctx context.Context, orderNumber string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_number=$1`
	o, err := scanOrder(r.DB.QueryRow(ctx, query, orderNumber))
	if err != nil {
		return nil, errors.New("order not found")
	}
	return o, nil
}

// ClaimPendingTx atomically flips is_ordered for a still-pending order and
// returns the claimed row. A nil order (no error) means no pending order with
// that number exists — either unknown or already confirmed — and the caller
// must treat the confirmation as a no-op. The conditional UPDATE is what
// makes duplicate confirmation callbacks race-safe.
func (r *OrderRepository) ClaimPendingTx(ctx context.Context, tx pgx.Tx, orderNumber string) (*model.Order, error) {
	query := `
		UPDATE orders SET is_ordered=true, updated_at=$2
		WHERE order_number=$1 AND is_ordered=false
		RETURNING ` + orderColumns
	o, err := scanOrder(tx.QueryRow(ctx, query, orderNumber, time.Now()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return o, nil
}

// LinkPaymentTx attaches the created payment row to the claimed order.
func (r *OrderRepository) LinkPaymentTx(ctx context.Context, tx pgx.Tx, orderID, paymentID int64) error {
	query := `UPDATE orders SET paymentid=$1, updated_at=$2 WHERE orderid=$3`
	_, err := tx.Exec(ctx, query, paymentID, time.Now(), orderID)
	return err
}

// ListConfirmedByAuth returns the account's confirmed orders, newest first.
func (r *OrderRepository) ListConfirmedByAuth(ctx context.Context, authID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE authid=$1 AND is_ordered=true ORDER BY orderid DESC`
	rows, err := r.DB.Query(ctx, query, authID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

// CreateOrderProductTx writes one immutable purchased-line snapshot.
func (r *OrderRepository) CreateOrderProductTx(ctx context.Context, tx pgx.Tx, op *model.OrderProduct) (int64, error) {
	var id int64
	query := `
		INSERT INTO order_products
			(orderid, paymentid, authid, productid, productname, quantity, product_price, ordered, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, true, $8)
		RETURNING orderproductid
	`
	err := tx.QueryRow(ctx, query,
		op.OrderID, op.PaymentID, op.AuthID, op.ProductID, op.ProductName,
		op.Quantity, op.ProductPrice, time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *OrderRepository) ListOrderProducts(ctx context.Context, orderID int64) ([]model.OrderProduct, error) {
	query := `
		SELECT orderproductid, orderid, paymentid, authid, productid, productname, quantity, product_price, ordered, created_at
		FROM order_products
		WHERE orderid=$1
		ORDER BY orderproductid
	`
	rows, err := r.DB.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.OrderProduct
	for rows.Next() {
		var op model.OrderProduct
		if err := rows.Scan(
			&op.OrderProductID, &op.OrderID, &op.PaymentID, &op.AuthID, &op.ProductID,
			&op.ProductName, &op.Quantity, &op.ProductPrice, &op.Ordered, &op.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, op)
	}
	return out, rows.Err()
}
