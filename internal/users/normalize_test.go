package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/userdir/internal/common"
)

func TestNormalizeLogin_Email(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"lowercase passthrough", "ivan@test.com", "ivan@test.com"},
		{"uppercase folded", "IVAN@Test.COM", "ivan@test.com"},
		{"whitespace trimmed", "  ivan@test.com \n", "ivan@test.com"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeLogin(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeLogin_Phone(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"formatted", "+7 (999) 765-43-21", "+79997654321"},
		{"dashed", "+7-999-765-43-21", "+79997654321"},
		{"bare", "+79997654321", "+79997654321"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeLogin(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizePhone_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing plus", "79997654321"},
		{"too short", "+7999765432"},
		{"too long", "+799976543211"},
		{"letters only", "not a phone"},
		{"empty", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NormalizePhone(tc.raw)
			assert.ErrorIs(t, err, common.ErrorInvalidPhoneFormat)
		})
	}
}

func TestSplitFullName(t *testing.T) {
	tests := []struct {
		name      string
		fullName  string
		wantFirst string
		wantLast  string
		wantErr   bool
	}{
		{"two tokens", "Ivan Ivanov", "Ivan", "Ivanov", false},
		{"single token", "madonna", "madonna", "", false},
		{"extra whitespace", "  Ivan   Ivanov  ", "Ivan", "Ivanov", false},
		{"three tokens", "a b c", "", "", true},
		{"empty", "", "", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			first, last, err := SplitFullName(tc.fullName)
			if tc.wantErr {
				assert.ErrorIs(t, err, common.ErrorInvalidFullName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantFirst, first)
			assert.Equal(t, tc.wantLast, last)
		})
	}
}
