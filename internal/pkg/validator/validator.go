package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// Report wire names, not Go field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Missing returns the wire names of required fields that are absent or empty.
// Presence is the only check performed: any non-empty string passes, no email
// or phone format validation happens here.
func Missing(v interface{}) []string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var missing []string
	for _, fe := range err.(validator.ValidationErrors) {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		}
	}
	return missing
}
