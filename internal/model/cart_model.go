package model

import "time"

// CartOwner identifies who a cart row belongs to. Exactly one of AuthID or
// CartToken is set: authenticated requests carry AuthID, guest requests carry
// the session cart token issued by the API.
type CartOwner struct {
	AuthID    int64
	CartToken string
}

func (o CartOwner) IsAccount() bool {
	return o.AuthID != 0
}

// Cart is a guest browsing session, created lazily on the first add.
type Cart struct {
	CartID    int64      `json:"cartid"`
	CartToken string     `json:"cart_token"`
	DateAdded *time.Time `json:"date_added,omitempty"`
}

type CartItem struct {
	CartItemID int64  `json:"cartitemid"`
	ProductID  int64  `json:"productid"`
	AuthID     *int64 `json:"authid,omitempty"`
	CartID     *int64 `json:"cartid,omitempty"`
	Quantity   int    `json:"quantity"`
	IsActive   bool   `json:"is_active"`
}

// CartLine is what the API exposes (joined with products).
type CartLine struct {
	CartItemID  int64       `json:"cartitemid"`
	ProductID   int64       `json:"productid"`
	ProductName string      `json:"productname"`
	Price       int64       `json:"price"`
	Quantity    int         `json:"quantity"`
	SubTotal    int64       `json:"sub_total"`
	Variations  []Variation `json:"variations,omitempty"`
}

// CartTotals is the running total block shown on cart and checkout pages.
type CartTotals struct {
	SubTotal   int64   `json:"sub_total"`
	Tax        float64 `json:"tax"`
	GrandTotal float64 `json:"grand_total"`
	Quantity   int     `json:"quantity"`
}

// CartResponse is returned when calling GET /cart.
type CartResponse struct {
	Items     []CartLine `json:"items"`
	Totals    CartTotals `json:"totals"`
	CartToken string     `json:"cart_token,omitempty"`
}
