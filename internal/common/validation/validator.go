package validation

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/architect/soundlearn/internal/common/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func Validate(data interface{}) []ValidationError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	return fromValidator(err)
}

func fromValidator(err error) []ValidationError {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return []ValidationError{{Message: err.Error()}}
	}
	out := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "uuid", "uuid4":
		return "must be a valid id"
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	}
	return fmt.Sprintf("field must satisfy %s constraint", fe.Tag())
}

// FromBinding converts a gin binding error into a single Validation AppError
// naming every failing field. Malformed JSON becomes a BadRequest.
func FromBinding(err error) *errors.AppError {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.BadRequest("malformed request body: " + err.Error())
	}
	return FromList(fromValidator(err))
}

// FromList folds field errors into one AppError, or nil when list is empty.
func FromList(list []ValidationError) *errors.AppError {
	if len(list) == 0 {
		return nil
	}
	parts := make([]string, 0, len(list))
	for _, v := range list {
		if v.Field == "" {
			parts = append(parts, v.Message)
			continue
		}
		parts = append(parts, v.Field+" "+v.Message)
	}
	return errors.Validation("validation failed", strings.Join(parts, "; "))
}

func ValidateFloatRange(value float64, min, max float64) error {
	if value < min || value > max {
		return fmt.Errorf("value must be between %g and %g", min, max)
	}
	return nil
}
