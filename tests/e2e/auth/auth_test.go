//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"roomstay/internal/domain/user"
	"roomstay/internal/handler/dto/request"
	"roomstay/internal/handler/dto/response"
	"roomstay/internal/usecase/queries"
	"roomstay/tests/common/authtest"
	"roomstay/tests/common/dbtest"
	"roomstay/tests/common/httptest"
	"roomstay/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestLoginFlow() {
	s.Run("Normal case: login, fetch identity, refresh, logout", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "alice@example.com", string(user.RoleGuest))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "alice@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var login response.LoginResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &login))
		require.NotEmpty(t, login.AccessToken)

		refreshCookie := httptest.ExtractCookie(w, "refresh_token")
		require.NotNil(t, refreshCookie)
		require.NotEmpty(t, refreshCookie.Value)

		mw := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, login.AccessToken)
		require.Equal(t, http.StatusOK, mw.Code, mw.Body.String())

		var me queries.AuthorizedUserView
		require.NoError(t, httptest.DecodeResponseBody(t, mw.Body, &me))
		require.Equal(t, "alice@example.com", me.Email)
		require.Equal(t, "guest", me.Role)
		require.True(t, me.IsActive)

		rw := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil,
			httptest.ExtractCookies(w), "")
		require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())

		var refreshed response.LoginResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rw.Body, &refreshed))
		require.NotEmpty(t, refreshed.AccessToken)

		authtest.LogoutUser(t, s.Router, httptest.ExtractCookies(rw))
	})

	s.Run("Error case: wrong password is rejected", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "alice@example.com", string(user.RoleGuest))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "alice@example.com", Password: "wrong-password"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("Error case: unknown email is rejected without detail", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "ghost@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
		require.Contains(t, w.Body.String(), "Invalid email or password")
	})

	s.Run("Error case: protected routes require a token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}
