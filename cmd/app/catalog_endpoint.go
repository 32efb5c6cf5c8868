package main

import (
	"errors"
	"net/http"
	"strconv"

	"StorefrontAPI/internal/middleware"
	"StorefrontAPI/internal/model"
	"StorefrontAPI/internal/repository"
	"StorefrontAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type createCategoryRequest struct {
	CategoryName string  `json:"categoryname"`
	Description  *string `json:"description,omitempty"`
}

type createProductRequest struct {
	ProductName string  `json:"productname"`
	Slug        string  `json:"slug,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       int64   `json:"price"`
	Image       *string `json:"image,omitempty"`
	Stock       int     `json:"stock"`
	IsAvailable bool    `json:"is_available"`
	IsTrending  bool    `json:"is_trending"`
	IsNew       bool    `json:"is_new"`
	CategoryID  int64   `json:"categoryid"`
}

type createVariationRequest struct {
	VariationCategory string `json:"variation_category"`
	VariationValue    string `json:"variation_value"`
}

type submitReviewRequest struct {
	Subject string  `json:"subject"`
	Review  string  `json:"review"`
	Rating  float64 `json:"rating"`
}

// registerCatalogRoutes mounts the storefront read surface plus the
// admin-side writes.
//
// Public:
//
//	GET /store                              -> listing (?category=&q=&new=&trending=&sort=&limit=&offset=)
//	GET /store/:categorySlug/:productSlug   -> product detail
//	GET /categories                         -> category list
//	GET /products/:id/reviews               -> visible reviews
//
// Protected:
//
//	POST /products/:id/reviews  (any authenticated user)
//	POST /categories, /products, /products/:id/variations, PUT /products/:id  (admin)
func registerCatalogRoutes(g *echo.Group, cs *services.CatalogService, rs *services.ReviewService) {
	g.GET("/store", func(c echo.Context) error {
		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		offset, _ := strconv.Atoi(c.QueryParam("offset"))

		f := repository.ListFilter{
			CategorySlug: c.QueryParam("category"),
			Search:       c.QueryParam("q"),
			OnlyNew:      c.QueryParam("new") == "true",
			OnlyTrending: c.QueryParam("trending") == "true",
			SortNewest:   c.QueryParam("sort") == "newest",
			Limit:        limit,
			Offset:       offset,
		}
		list, err := cs.ListProducts(c.Request().Context(), f)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"products": list, "count": len(list)})
	})

	g.GET("/store/:categorySlug/:productSlug", func(c echo.Context) error {
		detail, err := cs.ProductDetail(c.Request().Context(), c.Param("categorySlug"), c.Param("productSlug"))
		if err != nil {
			if errors.Is(err, services.ErrProductNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, detail)
	})

	g.GET("/categories", func(c echo.Context) error {
		list, err := cs.ListCategories(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	g.GET("/products/:id/reviews", func(c echo.Context) error {
		productID, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		list, err := rs.ListForProduct(c.Request().Context(), productID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	g.POST("/products/:id/reviews", func(c echo.Context) error {
		claims := middleware.TryGetClaimsFromAuthHeader(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		}
		productID, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		req := new(submitReviewRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		err := rs.Submit(c.Request().Context(), claims.AuthID, productID, req.Subject, req.Review, req.Rating, c.RealIP())
		if err != nil {
			if errors.Is(err, services.ErrProductNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
			}
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]string{"message": "review submitted"})
	})

	// admin writes
	admin := g.Group("", middleware.JWTMiddleware(), middleware.AdminOnly)

	admin.POST("/categories", func(c echo.Context) error {
		req := new(createCategoryRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		id, err := cs.CreateCategory(c.Request().Context(), req.CategoryName, req.Description)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]interface{}{"categoryid": id})
	})

	admin.POST("/products", func(c echo.Context) error {
		req := new(createProductRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		p := &model.Product{
			ProductName: req.ProductName,
			Slug:        req.Slug,
			Description: req.Description,
			Price:       req.Price,
			Image:       req.Image,
			Stock:       req.Stock,
			IsAvailable: req.IsAvailable,
			IsTrending:  req.IsTrending,
			IsNew:       req.IsNew,
			CategoryID:  req.CategoryID,
		}
		id, err := cs.CreateProduct(c.Request().Context(), p)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]interface{}{"productid": id})
	})

	admin.PUT("/products/:id", func(c echo.Context) error {
		productID, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		req := new(createProductRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		p := &model.Product{
			ProductID:   productID,
			ProductName: req.ProductName,
			Slug:        req.Slug,
			Description: req.Description,
			Price:       req.Price,
			Image:       req.Image,
			Stock:       req.Stock,
			IsAvailable: req.IsAvailable,
			IsTrending:  req.IsTrending,
			IsNew:       req.IsNew,
			CategoryID:  req.CategoryID,
		}
		if err := cs.UpdateProduct(c.Request().Context(), p); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})

	admin.POST("/products/:id/variations", func(c echo.Context) error {
		productID, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		req := new(createVariationRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		id, err := cs.AddVariation(c.Request().Context(), &model.Variation{
			ProductID:         productID,
			VariationCategory: req.VariationCategory,
			VariationValue:    req.VariationValue,
			IsActive:          true,
		})
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]interface{}{"variationid": id})
	})
}
