package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	require.NoError(t, ValidateUsername("abc"))
	require.NoError(t, ValidateUsername("a_longer_name"))
	require.ErrorIs(t, ValidateUsername("ab"), ErrUsernameTooShort)
	require.ErrorIs(t, ValidateUsername("  ab  "), ErrUsernameTooShort)
	require.ErrorIs(t, ValidateUsername(""), ErrUsernameTooShort)
}

func TestValidateEmail(t *testing.T) {
	require.NoError(t, ValidateEmail("alice@x.com"))
	require.NoError(t, ValidateEmail("a.b+tag@example.co.uk"))
	require.ErrorIs(t, ValidateEmail("not-an-email"), ErrInvalidEmail)
	require.ErrorIs(t, ValidateEmail("a@"), ErrInvalidEmail)
	require.ErrorIs(t, ValidateEmail(""), ErrInvalidEmail)
	require.ErrorIs(t, ValidateEmail("Alice <alice@x.com>"), ErrInvalidEmail)
}

func TestValidatePassword(t *testing.T) {
	require.NoError(t, ValidatePassword("secret1"))
	require.NoError(t, ValidatePassword("123456"))
	require.ErrorIs(t, ValidatePassword("12345"), ErrPasswordTooShort)
	require.ErrorIs(t, ValidatePassword(""), ErrPasswordTooShort)
}

func TestRoleValid(t *testing.T) {
	require.NoError(t, ValidateRole(RoleAdmin))
	require.NoError(t, ValidateRole(RoleUser))
	require.NoError(t, ValidateRole(RoleManager))
	require.ErrorIs(t, ValidateRole(Role("root")), ErrInvalidRole)
	require.ErrorIs(t, ValidateRole(Role("")), ErrInvalidRole)
}
