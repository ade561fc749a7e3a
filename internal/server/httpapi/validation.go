package httpapi

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/authgate/authgate/internal/server/users"
)

var registerOnce sync.Once

// registerPasswordValidation hooks the password complexity policy into gin's
// request binding as the "userpassword" rule, so malformed payloads are
// rejected with 400 before they reach the service.
func registerPasswordValidation() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("userpassword", func(fl validator.FieldLevel) bool {
				return users.ValidPassword(fl.Field().String())
			})
		}
	})
}

// bindingErrors turns a binding failure into per-field messages for the 400
// response body. Non-validator errors (malformed JSON) produce a single
// generic entry.
func bindingErrors(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"request body is not valid JSON"}
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			out = append(out, fe.Field()+" is required")
		case "email":
			out = append(out, fe.Field()+" must be a valid email address")
		case "userpassword":
			out = append(out, users.PasswordPolicyMessage)
		default:
			out = append(out, fe.Field()+" is invalid")
		}
	}
	return out
}
