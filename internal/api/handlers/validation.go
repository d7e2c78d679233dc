package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate проверяет структуру по тегам validate
// Возвращает ошибку с перечнем полей в понятном виде
func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fieldMessage(fe))
	}
	return errors.New(strings.Join(messages, "; "))
}

// RespondValidationError отправляет 400 validation_error
func RespondValidationError(w http.ResponseWriter, err error) {
	RespondError(w, http.StatusBadRequest, CodeValidation, err.Error())
}

func fieldMessage(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must match %s", field, fe.Param())
	default:
		return field + " is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
