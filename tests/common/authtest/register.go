//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"hotel-booking-api/internal/handler/dto/request"
	"hotel-booking-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type authBody struct {
	AccessToken string `json:"access_token"`
}

// RegisterUser creates an account through the API and returns its access token.
func RegisterUser(t *testing.T, router *gin.Engine, name, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/register",
		request.RegisterRequest{Name: name, Email: email, Password: password}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body authBody
	_ = httptest.DecodeResponseBody(t, w.Body, &body)
	require.NotEmpty(t, body.AccessToken, "Access token missing from register response")

	return body.AccessToken
}

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body authBody
	_ = httptest.DecodeResponseBody(t, w.Body, &body)
	require.NotEmpty(t, body.AccessToken, "Access token missing from login response")

	return body.AccessToken
}
