package model

type Category struct {
	CategoryID   int64   `json:"categoryid"`
	CategoryName string  `json:"categoryname"`
	Slug         string  `json:"slug"`
	Description  *string `json:"description,omitempty"`
	CatImage     *string `json:"cat_image,omitempty"`
}
