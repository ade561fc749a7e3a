package users

import (
	"errors"
	"testing"

	"github.com/authgate/authgate/internal/common"
)

func TestValidPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"meets policy", "Abcd123!", true},
		{"longer valid", "longerPassw0rd$", true},
		{"too short", "short1!", false},
		{"no digit or symbol", "password", false},
		{"no symbol", "password1", false},
		{"no letter", "12345678!", false},
		{"disallowed symbol", "Abcd123#", false},
		{"empty", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidPassword(tc.password); got != tc.want {
				t.Fatalf("ValidPassword(%q) = %v, want %v", tc.password, got, tc.want)
			}
		})
	}
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email string
		want  bool
	}{
		{"a@x.com", true},
		{"first.last@sub.example.org", true},
		{"missing-at.com", false},
		{"no@tld", false},
		{"spaces in@x.com", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := ValidEmail(tc.email); got != tc.want {
			t.Fatalf("ValidEmail(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}

func TestValidateSignup(t *testing.T) {
	t.Parallel()

	if err := ValidateSignup("a@x.com", "Abcd123!", "A"); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}

	tests := []struct {
		name             string
		email, pw, uname string
	}{
		{"bad email", "not-an-email", "Abcd123!", "A"},
		{"weak password", "a@x.com", "short1!", "A"},
		{"empty name", "a@x.com", "Abcd123!", "  "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSignup(tc.email, tc.pw, tc.uname)
			if !errors.Is(err, common.ErrorValidation) {
				t.Fatalf("want ErrorValidation, got %v", err)
			}
		})
	}
}
