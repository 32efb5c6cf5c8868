package main

import (
	"net/http"

	"StorefrontAPI/internal/middleware"
	"StorefrontAPI/internal/model"
	"StorefrontAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type updateAccountRequest struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Phone        *string `json:"phone"`
	AddressLine1 *string `json:"address_line_1"`
	AddressLine2 *string `json:"address_line_2"`
	Country      *string `json:"country"`
	State        *string `json:"state"`
	City         *string `json:"city"`
}

func registerAccountRoutes(g *echo.Group, as *services.AccountService) {
	p := g.Group("/account")
	p.Use(middleware.JWTMiddleware())

	p.GET("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		a, err := as.Get(c.Request().Context(), claims.AuthID)
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, a)
	})

	p.PUT("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(updateAccountRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		a := &model.Account{
			AuthID:       claims.AuthID,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Phone:        req.Phone,
			AddressLine1: req.AddressLine1,
			AddressLine2: req.AddressLine2,
			Country:      req.Country,
			State:        req.State,
			City:         req.City,
		}
		if err := as.Update(c.Request().Context(), a); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})
}
