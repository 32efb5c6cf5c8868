package main

import (
	"errors"
	"net/http"

	"StorefrontAPI/internal/middleware"
	"StorefrontAPI/internal/services"

	"github.com/labstack/echo/v4"
)

func registerPaymentRoutes(g *echo.Group, ps *services.PaymentService, checkout *services.CheckoutService) {
	p := g.Group("/payments")

	// ============================
	// GATEWAY NOTIFICATION
	// (NO JWT, must be public)
	// ============================
	p.POST("/notification", func(c echo.Context) error {
		var payload map[string]interface{}
		if err := c.Bind(&payload); err != nil {
			return c.JSON(http.StatusOK, echo.Map{
				"status": "ignored",
				"reason": "invalid payload",
			})
		}

		if err := ps.HandleNotification(c.Request().Context(), payload); err != nil {
			// The gateway requires HTTP 200 or it will retry
			return c.JSON(http.StatusOK, echo.Map{
				"status": "ignored",
				"reason": err.Error(),
			})
		}

		return c.JSON(http.StatusOK, echo.Map{
			"status": "ok",
		})
	})

	// ============================
	// PAYMENT RETURN TRIP
	// (public; untrusted — the order table is the authority)
	// ============================
	p.GET("/complete", func(c echo.Context) error {
		orderNumber := c.QueryParam("order_number")
		transactionID := c.QueryParam("payment_id")
		if orderNumber == "" || transactionID == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing order_number or payment_id"})
		}

		confirmation, err := checkout.Confirm(c.Request().Context(), orderNumber, transactionID)
		if err != nil {
			if errors.Is(err, services.ErrAlreadyConfirmed) {
				// duplicate return trip → idempotent "already confirmed" view
				return c.JSON(http.StatusOK, echo.Map{"status": "already confirmed"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, confirmation)
	})

	// ============================
	// SESSION CREATION / RETRY
	// (JWT protected)
	// ============================
	p.Use(middleware.JWTMiddleware())

	p.POST("/:orderNumber/session", func(c echo.Context) error {
		cl := middleware.GetClaims(c)
		orderNumber := c.Param("orderNumber")

		redirectURL, sessionToken, err := ps.CreateSession(c.Request().Context(), cl.AuthID, orderNumber)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrOrderNotFound):
				return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
			case errors.Is(err, services.ErrGatewayUnavailable):
				return c.JSON(http.StatusBadGateway, echo.Map{"error": "payment session unavailable, please retry"})
			}
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		return c.JSON(http.StatusOK, echo.Map{
			"redirect_url":  redirectURL,
			"session_token": sessionToken,
		})
	})
}
