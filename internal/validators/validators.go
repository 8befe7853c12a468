package validators

import (
	"unicode"

	"github.com/go-playground/validator/v10"
)

// NoWhiteSpaces rejects values containing any whitespace character. Used on
// usernames, which travel in URL paths and query strings.
func NoWhiteSpaces(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	for _, ch := range value {
		if unicode.IsSpace(ch) {
			return false
		}
	}
	return true
}
