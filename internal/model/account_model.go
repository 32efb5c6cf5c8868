package model

import "time"

// Account is the billing profile attached to an auth user; its fields
// prefill the checkout form.
type Account struct {
	AccountID    int64      `json:"accountid"`
	AuthID       int64      `json:"authid"`
	FirstName    *string    `json:"first_name,omitempty"`
	LastName     *string    `json:"last_name,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	AddressLine1 *string    `json:"address_line_1,omitempty"`
	AddressLine2 *string    `json:"address_line_2,omitempty"`
	Country      *string    `json:"country,omitempty"`
	State        *string    `json:"state,omitempty"`
	City         *string    `json:"city,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}
