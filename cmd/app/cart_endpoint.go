package main

import (
	"errors"
	"net/http"
	"strconv"

	"StorefrontAPI/internal/middleware"
	"StorefrontAPI/internal/model"
	"StorefrontAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type addCartRequest struct {
	VariationIDs []int64 `json:"variation_ids,omitempty"`
}

// cartOwner resolves who owns the cart for this request: an authenticated
// account when a valid bearer token is present, otherwise the guest session
// identified by X-Cart-Token (minted here on first use).
func cartOwner(c echo.Context) model.CartOwner {
	if claims := middleware.TryGetClaimsFromAuthHeader(c); claims != nil {
		return model.CartOwner{AuthID: claims.AuthID}
	}
	return model.CartOwner{CartToken: middleware.EnsureCartToken(c)}
}

func registerCartRoutes(g *echo.Group, cs *services.CartService) {
	p := g.Group("/cart")

	// GET cart
	p.GET("", func(c echo.Context) error {
		owner := cartOwner(c)
		cart, err := cs.GetCart(c.Request().Context(), owner)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		cart.CartToken = owner.CartToken
		return c.JSON(http.StatusOK, cart)
	})

	// ADD one unit of a product
	p.POST("/add/:productId", func(c echo.Context) error {
		productID, _ := strconv.ParseInt(c.Param("productId"), 10, 64)
		req := new(addCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		owner := cartOwner(c)
		if err := cs.AddItem(c.Request().Context(), owner, productID, req.VariationIDs); err != nil {
			if errors.Is(err, services.ErrProductNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
			}
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]string{"message": "added"})
	})

	// DECREMENT quantity (delete at 1)
	p.POST("/decrement/:productId/:itemId", func(c echo.Context) error {
		productID, _ := strconv.ParseInt(c.Param("productId"), 10, 64)
		itemID, _ := strconv.ParseInt(c.Param("itemId"), 10, 64)
		owner := cartOwner(c)
		if err := cs.DecrementItem(c.Request().Context(), owner, productID, itemID); err != nil {
			if errors.Is(err, services.ErrCartItemNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
			}
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "decremented"})
	})

	// REMOVE item
	p.DELETE("/remove/:productId/:itemId", func(c echo.Context) error {
		productID, _ := strconv.ParseInt(c.Param("productId"), 10, 64)
		itemID, _ := strconv.ParseInt(c.Param("itemId"), 10, 64)
		owner := cartOwner(c)
		if err := cs.RemoveItem(c.Request().Context(), owner, productID, itemID); err != nil {
			if errors.Is(err, services.ErrCartItemNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
			}
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "removed"})
	})
}
