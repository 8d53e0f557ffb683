package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"A", false},
		{"  A  ", false},
		{"Al", true},
		{" Al ", true},
		{"Zoë", true},
		{"李", false},
		{"李华", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ValidName(tc.in), "name %q", tc.in)
	}
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"a@b.c", true},
		{"first.last@sub.example.org", true},
		{"a@b", false},
		{"", false},
		{"a b@c.d", false},
		{"a@@b.c", false},
		{"@b.c", false},
		{"a@.c", false},
		{"a@b.", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ValidEmail(tc.in), "email %q", tc.in)
	}
}

func TestValidPassword(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"abc12345", false},
		{"abc123!@", true},
		{"short1!", false},
		{"abcdefg!", false},
		{"12345678!", true},
		{"Abc1234&", true},
		{"abc123!@ ", false},
		{"abc123!?", false},
		{"pässw0rd!", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ValidPassword(tc.in), "password %q", tc.in)
	}
}

func TestPasswordsMatch(t *testing.T) {
	t.Parallel()

	require.False(t, PasswordsMatch("y", "x"))
	require.True(t, PasswordsMatch("y", "y"))
	require.True(t, PasswordsMatch("", ""))
}
