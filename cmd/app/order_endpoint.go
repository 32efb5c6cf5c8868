package main

import (
	"errors"
	"net/http"

	"StorefrontAPI/internal/middleware"
	"StorefrontAPI/internal/model"
	"StorefrontAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type placeOrderRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2"`
	Country      string `json:"country"`
	State        string `json:"state"`
	City         string `json:"city"`
	OrderNote    string `json:"order_note"`
}

func registerOrderRoutes(
	g *echo.Group,
	checkout *services.CheckoutService,
	cs *services.CartService,
	as *services.AccountService,
	ps *services.PaymentService,
) {
	p := g.Group("/orders")
	p.Use(middleware.JWTMiddleware())

	// Checkout page data: cart with totals plus billing prefill.
	p.GET("/checkout", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		cart, err := cs.GetCart(c.Request().Context(), model.CartOwner{AuthID: claims.AuthID})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		if len(cart.Items) == 0 {
			return c.JSON(http.StatusConflict, map[string]string{"error": "cart is empty"})
		}
		account, email, err := as.CheckoutPrefill(c.Request().Context(), claims.AuthID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"cart":    cart,
			"billing": account,
			"email":   email,
		})
	})

	// Place order: freeze totals into a pending order, then hand back the
	// gateway session. A gateway failure still returns the order number so
	// the client can retry the payment session.
	p.POST("/place-order", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(placeOrderRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}

		form := services.BillingDetails{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Phone:        req.Phone,
			Email:        req.Email,
			AddressLine1: req.AddressLine1,
			AddressLine2: req.AddressLine2,
			Country:      req.Country,
			State:        req.State,
			City:         req.City,
			OrderNote:    req.OrderNote,
		}
		order, err := checkout.PlaceOrder(c.Request().Context(), claims.AuthID, form, c.RealIP())
		if err != nil {
			if errors.Is(err, services.ErrCartEmpty) {
				return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
			}
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		redirectURL, sessionToken, err := ps.CreateSession(c.Request().Context(), claims.AuthID, order.OrderNumber)
		if err != nil {
			// Order stays PendingPayment; client retries via the payments route.
			return c.JSON(http.StatusBadGateway, map[string]interface{}{
				"error":        "payment session unavailable, please retry",
				"order_number": order.OrderNumber,
			})
		}

		return c.JSON(http.StatusCreated, map[string]interface{}{
			"order":         order,
			"redirect_url":  redirectURL,
			"session_token": sessionToken,
		})
	})

	// Order history (confirmed orders only)
	p.GET("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		orders, err := checkout.OrderHistory(c.Request().Context(), claims.AuthID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, orders)
	})

	p.GET("/:orderNumber", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		order, err := checkout.GetOwnedOrder(c.Request().Context(), claims.AuthID, c.Param("orderNumber"))
		if err != nil {
			if errors.Is(err, services.ErrOrderNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, order)
	})
}
