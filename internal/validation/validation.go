package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates a request payload and returns one human-readable message
// per failing field, or nil when the payload is valid.
func Struct(s any) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"invalid request body"}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, message(fe))
	}
	return msgs
}

func message(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_without":
		return fmt.Sprintf("either %s or %s is required", field, strings.ToLower(fe.Param()))
	case "min":
		return fmt.Sprintf("%s cannot be less than %s character", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s cannot be more than %s character", field, fe.Param())
	case "email":
		return "invalid email address"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
