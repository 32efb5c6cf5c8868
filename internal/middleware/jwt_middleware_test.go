package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(42, "ada@example.com", "user", 1)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	c := e.NewContext(req, httptest.NewRecorder())

	claims := TryGetClaimsFromAuthHeader(c)
	require.NotNil(t, claims)
	assert.Equal(t, int64(42), claims.AuthID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestTryGetClaimsRejectsBadHeader(t *testing.T) {
	e := echo.New()

	for _, header := range []string{"", "Bearer", "Bearer not-a-token", "Basic abc"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		c := e.NewContext(req, httptest.NewRecorder())
		assert.Nil(t, TryGetClaimsFromAuthHeader(c), "header %q", header)
	}
}

func TestEnsureCartTokenMintsAndEchoes(t *testing.T) {
	e := echo.New()

	// no token yet → minted and echoed
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	token := EnsureCartToken(c)
	require.NotEmpty(t, token)
	assert.Equal(t, token, rec.Header().Get(CartTokenHeader))

	// existing token → replayed as-is
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(CartTokenHeader, token)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	assert.Equal(t, token, EnsureCartToken(c))
}
