//go:build unit

package user_test

import (
	"strings"
	"testing"

	"roomstay/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "valid email", input: "guest@example.com"},
		{name: "valid with plus tag", input: "guest+tag@example.com"},
		{name: "surrounding whitespace trimmed", input: "  guest@example.com  "},
		{name: "missing at sign", input: "guest.example.com", errIs: user.ErrInvalidEmail},
		{name: "missing domain", input: "guest@", errIs: user.ErrInvalidEmail},
		{name: "missing tld", input: "guest@example", errIs: user.ErrInvalidEmail},
		{name: "empty", input: "", errIs: user.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := user.NewEmail(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tc.input), e.Value())
		})
	}
}

func TestNewPassword(t *testing.T) {
	t.Run("minimum length accepted", func(t *testing.T) {
		p, err := user.NewPassword("12345678")
		require.NoError(t, err)
		assert.Equal(t, "12345678", p.Value())
	})

	t.Run("too short rejected", func(t *testing.T) {
		_, err := user.NewPassword("1234567")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestNewCredentials(t *testing.T) {
	t.Run("valid pair", func(t *testing.T) {
		c, err := user.NewCredentials("guest@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "guest@example.com", c.Email().Value())
		assert.Equal(t, "password123", c.Password().Value())
	})

	t.Run("bad email rejected first", func(t *testing.T) {
		_, err := user.NewCredentials("not-an-email", "password123")
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})

	t.Run("weak password rejected", func(t *testing.T) {
		_, err := user.NewCredentials("guest@example.com", "short")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestNewRole(t *testing.T) {
	for _, valid := range []string{"guest", "operator", "admin"} {
		t.Run("valid "+valid, func(t *testing.T) {
			r, err := user.NewRole(valid)
			require.NoError(t, err)
			assert.Equal(t, valid, r.String())
		})
	}

	for _, invalid := range []string{"", "superuser", "Guest"} {
		t.Run("invalid "+invalid, func(t *testing.T) {
			_, err := user.NewRole(invalid)
			assert.ErrorIs(t, err, user.ErrInvalidRole)
		})
	}
}
