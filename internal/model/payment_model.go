package model

import "time"

type Payment struct {
	PaymentID     int64      `json:"paymentid"`
	AuthID        int64      `json:"authid"`
	ExternalRef   string     `json:"external_ref"` // transaction id from the gateway
	PaymentMethod string     `json:"payment_method"`
	AmountPaid    float64    `json:"amount_paid"`
	Status        string     `json:"status"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}
