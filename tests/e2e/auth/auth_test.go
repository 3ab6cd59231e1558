//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"hotel-booking-api/internal/handler/dto/request"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/tests/common/authtest"
	"hotel-booking-api/tests/common/httptest"
	"hotel-booking-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	meURL       = "/api/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestRegister() {
	s.Run("Normal case: registration returns a usable token", func() {
		t := s.T()

		token := authtest.RegisterUser(t, s.Router, "Jane Guest", "jane@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		var me queries.AuthorizedUserView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
		require.Equal(t, "jane@example.com", me.Email)
		require.Equal(t, "Jane Guest", me.Name)
		require.Equal(t, "guest", me.Role)
	})

	s.Run("Error case: duplicate email is rejected", func() {
		t := s.T()

		authtest.RegisterUser(t, s.Router, "First", "taken@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL,
			request.RegisterRequest{Name: "Second", Email: "taken@example.com", Password: "password123"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Email already exists")
	})

	s.Run("Error case: incomplete payload is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL,
			map[string]string{"email": "nobody@example.com"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Missing required fields")
	})
}

func (s *AuthSuite) TestLogin() {
	s.Run("Normal case: login after registration", func() {
		t := s.T()

		authtest.RegisterUser(t, s.Router, "Login Guest", "login@example.com", "password123")

		token := authtest.LoginUser(t, s.Router, "login@example.com", "password123")
		require.NotEmpty(t, token)
	})

	s.Run("Error case: wrong password", func() {
		t := s.T()

		authtest.RegisterUser(t, s.Router, "Wrong Pass", "wrongpass@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "wrongpass@example.com", Password: "not-the-password"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("Error case: unknown email gets the same message", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "ghost@example.com", Password: "password123"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid email or password")
	})
}

func (s *AuthSuite) TestMe() {
	s.Run("Error case: missing token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("Error case: garbage token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "not-a-jwt")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}
