package validator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ParseError flattens a gin binding error into a field -> message map.
func ParseError(err error) map[string]string {
	fields := make(map[string]string)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
		}
	} else if err != nil {
		fields["error"] = err.Error()
	}
	return fields
}
