package reviews

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/plenkanet/CleanNet-Backend/internal/service/reviews/models"
)

// ValidationError ошибка валидации одного поля
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// ValidationErrors набор ошибок валидации
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// reviewValidator валидатор отзывов на тегах структуры
type reviewValidator struct {
	validate *validator.Validate
}

func newReviewValidator() *reviewValidator {
	return &reviewValidator{validate: validator.New()}
}

// Validate проверяет запрос на создание отзыва
func (v *reviewValidator) Validate(req *models.CreateReviewRequest) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return translateValidationErrors(validationErrs)
	}
	return err
}

// translateValidationErrors переводит ошибки validator в читаемый вид
func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	result := make(ValidationErrors, 0, len(errs))
	for _, e := range errs {
		result = append(result, ValidationError{
			Field:   e.Field(),
			Message: messageForTag(e),
		})
	}
	return result
}

func messageForTag(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "min":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	default:
		return fmt.Sprintf("failed on %s validation", e.Tag())
	}
}
