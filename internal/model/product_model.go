package model

import "time"

type Product struct {
	ProductID    int64      `json:"productid"`
	ProductName  string     `json:"productname"`
	Slug         string     `json:"slug"`
	Description  *string    `json:"description,omitempty"`
	Price        int64      `json:"price"`
	Image        *string    `json:"image,omitempty"`
	Stock        int        `json:"stock"`
	IsAvailable  bool       `json:"is_available"`
	IsTrending   bool       `json:"is_trending"`
	IsNew        bool       `json:"is_new"`
	CategoryID   int64      `json:"categoryid"`
	CreatedDate  *time.Time `json:"created_date,omitempty"`
	ModifiedDate *time.Time `json:"modified_date,omitempty"`
}

// Variation is one selectable option of a product (color or size).
type Variation struct {
	VariationID       int64  `json:"variationid"`
	ProductID         int64  `json:"productid"`
	VariationCategory string `json:"variation_category"` // "color" or "size"
	VariationValue    string `json:"variation_value"`
	IsActive          bool   `json:"is_active"`
}

type GalleryImage struct {
	GalleryID int64  `json:"galleryid"`
	ProductID int64  `json:"productid"`
	Image     string `json:"image"`
}

// ProductDetail is what GET product detail returns (joined aggregates).
type ProductDetail struct {
	Product       Product        `json:"product"`
	Variations    []Variation    `json:"variations"`
	Gallery       []GalleryImage `json:"gallery"`
	AverageRating float64        `json:"average_rating"`
	ReviewCount   int            `json:"review_count"`
}
