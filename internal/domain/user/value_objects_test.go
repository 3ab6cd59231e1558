//go:build unit

package user_test

import (
	"testing"

	"hotel-booking-api/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		errIs error
	}{
		{"valid email", "guest@example.com", nil},
		{"valid email with plus tag", "guest+tag@example.com", nil},
		{"surrounding whitespace is trimmed", "  guest@example.com  ", nil},
		{"missing at sign", "guest.example.com", user.ErrInvalidEmail},
		{"missing domain", "guest@", user.ErrInvalidEmail},
		{"missing tld", "guest@example", user.ErrInvalidEmail},
		{"empty string", "", user.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := user.NewEmail(tt.input)

			if tt.errIs == nil {
				require.NoError(t, err)
				assert.NotEmpty(t, email.Value())
			} else {
				require.ErrorIs(t, err, tt.errIs)
			}
		})
	}
}

func TestNewPassword(t *testing.T) {
	t.Run("eight characters is accepted", func(t *testing.T) {
		_, err := user.NewPassword("12345678")
		require.NoError(t, err)
	})

	t.Run("seven characters is rejected", func(t *testing.T) {
		_, err := user.NewPassword("1234567")
		require.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestNewName(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		name, err := user.NewName("  Jane Guest  ")
		require.NoError(t, err)
		assert.Equal(t, "Jane Guest", name.Value())
	})

	t.Run("whitespace only is rejected", func(t *testing.T) {
		_, err := user.NewName("   ")
		require.ErrorIs(t, err, user.ErrEmptyName)
	})
}

func TestNewCredentials(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		creds, err := user.NewCredentials("guest@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "guest@example.com", creds.Email().Value())
		assert.Equal(t, "password123", creds.Password().Value())
	})

	t.Run("invalid email fails first", func(t *testing.T) {
		_, err := user.NewCredentials("not-an-email", "password123")
		require.ErrorIs(t, err, user.ErrInvalidEmail)
	})

	t.Run("weak password is rejected", func(t *testing.T) {
		_, err := user.NewCredentials("guest@example.com", "short")
		require.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}
