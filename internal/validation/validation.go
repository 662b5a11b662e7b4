// Package validation binds JSON request bodies and runs struct-tag
// validation on them, mapping failures back to the API's error messages.
package validation

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns a configured validator with the custom tags registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// notblank rejects strings that are empty after trimming, which plain
	// `required` does not.
	_ = v.RegisterValidation("notblank", func(fl validatorv10.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// Decode parses the request body into out.
func Decode(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

// MessageFor resolves the first failed field of a validation error against
// messages, falling back when the field has no registered message.
func MessageFor(err error, messages map[string]string, fallback string) string {
	var verrs validatorv10.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := messages[verrs[0].StructField()]; ok {
			return msg
		}
	}
	return fallback
}
