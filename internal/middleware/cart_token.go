package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CartTokenHeader carries the guest session cart token. The client stores
// whatever token the API hands back and replays it on every cart request.
const CartTokenHeader = "X-Cart-Token"

// GetCartToken returns the guest cart token from the request, or "".
func GetCartToken(c echo.Context) string {
	return c.Request().Header.Get(CartTokenHeader)
}

// EnsureCartToken returns the request's cart token, minting a fresh one when
// the client has none yet. The token is echoed back on the response so the
// client can persist it.
func EnsureCartToken(c echo.Context) string {
	token := GetCartToken(c)
	if token == "" {
		token = uuid.NewString()
	}
	c.Response().Header().Set(CartTokenHeader, token)
	return token
}
