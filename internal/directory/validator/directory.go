package validator

import (
	"errors"
	"fmt"
	"strings"

	"campuspark/pkg/logger"
	"campuspark/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type DirectoryValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewDirectoryValidator(log *logger.Logger) *DirectoryValidator {
	return &DirectoryValidator{
		validate: validator.New(),
		logger:   log,
	}
}

func (v *DirectoryValidator) ValidateLot(lot *model.Lot) error {
	if err := v.validate.Struct(lot); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return err
	}

	switch lot.RateModel {
	case model.RateModelHourly, model.RateModelSemester:
	default:
		return ValidationErrors{
			ValidationError{
				Field:   "RateModel",
				Message: fmt.Sprintf("rate_model must be %q or %q", model.RateModelHourly, model.RateModelSemester),
			},
		}
	}

	if lot.RateModel == model.RateModelHourly && lot.HourlyRateCents <= 0 {
		return ValidationErrors{
			ValidationError{
				Field:   "HourlyRateCents",
				Message: "hourly_rate_cents must be positive for hourly lots",
			},
		}
	}

	return nil
}

func (v *DirectoryValidator) ValidatePermit(permit *model.Permit) error {
	if err := v.validate.Struct(permit); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "mongodb":
			message = fmt.Sprintf("%s must be a valid MongoDB ObjectID", err.Field())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		case "gtfield":
			message = fmt.Sprintf("%s must be after %s", err.Field(), err.Param())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
