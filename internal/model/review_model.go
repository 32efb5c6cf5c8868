package model

import "time"

type ReviewRating struct {
	ReviewID  int64      `json:"reviewid"`
	ProductID int64      `json:"productid"`
	AuthID    int64      `json:"authid"`
	Subject   string     `json:"subject"`
	Review    string     `json:"review"`
	Rating    float64    `json:"rating"`
	IP        *string    `json:"ip,omitempty"`
	Status    bool       `json:"status"` // only status=true reviews count toward aggregates
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
