package model

import "time"

// Order carries the billing snapshot and the totals frozen at placement time.
// is_ordered stays false while the order waits for payment confirmation.
type Order struct {
	OrderID      int64      `json:"orderid"`
	AuthID       int64      `json:"authid"`
	OrderNumber  string     `json:"order_number"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Phone        string     `json:"phone"`
	Email        string     `json:"email"`
	AddressLine1 string     `json:"address_line_1"`
	AddressLine2 *string    `json:"address_line_2,omitempty"`
	Country      string     `json:"country"`
	State        string     `json:"state"`
	City         string     `json:"city"`
	OrderNote    *string    `json:"order_note,omitempty"`
	OrderTotal   float64    `json:"order_total"`
	Tax          float64    `json:"tax"`
	IP           *string    `json:"ip,omitempty"`
	IsOrdered    bool       `json:"is_ordered"`
	PaymentID    *int64     `json:"paymentid,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// OrderProduct is the immutable snapshot of one purchased line, written once
// during payment confirmation and never updated afterwards.
type OrderProduct struct {
	OrderProductID int64      `json:"orderproductid"`
	OrderID        int64      `json:"orderid"`
	PaymentID      int64      `json:"paymentid"`
	AuthID         int64      `json:"authid"`
	ProductID      int64      `json:"productid"`
	ProductName    string     `json:"productname"`
	Quantity       int        `json:"quantity"`
	ProductPrice   int64      `json:"product_price"`
	Ordered        bool       `json:"ordered"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

// OrderConfirmation is rendered after a successful confirmation callback.
type OrderConfirmation struct {
	Order           Order          `json:"order"`
	Payment         Payment        `json:"payment"`
	OrderedProducts []OrderProduct `json:"ordered_products"`
	SubTotal        int64          `json:"sub_total"`
}
