package users

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/authgate/authgate/internal/common"
)

// passwordSymbols is the fixed set of symbols the password policy accepts.
const passwordSymbols = "@$!%*?&"

var emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// PasswordPolicyMessage describes the policy to end users; handlers reuse it
// in validation failure responses.
const PasswordPolicyMessage = "Password must be at least 8 characters and contain at least one letter, one number, and one special character."

// ValidEmail reports whether the address is well-formed enough to act as the
// account's natural key.
func ValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// ValidPassword enforces the complexity policy: minimum 8 characters with at
// least one letter, one digit, and one symbol from the allowed set, and no
// characters outside those classes.
func ValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasLetter, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		default:
			return false
		}
	}

	return hasLetter && hasDigit && hasSymbol
}

// ValidateSignup checks the signup payload against the constraints: email
// well-formed, password matching the policy, name non-empty. Failures match
// common.ErrorValidation with a user-facing message.
func ValidateSignup(email, password, name string) error {
	if !ValidEmail(email) {
		return fmt.Errorf("%w: email must be a valid email address", common.ErrorValidation)
	}
	if !ValidPassword(password) {
		return fmt.Errorf("%w: %s", common.ErrorValidation, PasswordPolicyMessage)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name must not be empty", common.ErrorValidation)
	}
	return nil
}
