package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators registers CLI-specific validation rules.
// Must be called before validating Config.
func RegisterCustomValidators(v *validator.Validate) error {
	// api_origin: validates an absolute http(s) URL with no trailing slash.
	if err := v.RegisterValidation("api_origin", validateAPIOrigin); err != nil {
		return fmt.Errorf("failed to register api_origin validator: %w", err)
	}
	return nil
}

// validateAPIOrigin validates the API base URL field.
func validateAPIOrigin(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if strings.HasSuffix(raw, "/") {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Validate validates the Config using struct tags and cross-field rules.
// Returns an error with actionable messages on failure.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := RegisterCustomValidators(v); err != nil {
		return err
	}

	if err := v.Struct(c); err != nil {
		return formatValidationErrors(err)
	}

	if c.API.Timeout < 0 {
		return errors.New("api.timeout: must not be negative")
	}

	return nil
}

// formatValidationErrors turns validator errors into actionable messages.
func formatValidationErrors(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s: required", fieldPath(fe)))
		case "api_origin":
			msgs = append(msgs, fmt.Sprintf("%s: must be an absolute http(s) URL without a trailing slash", fieldPath(fe)))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s: must be one of [%s]", fieldPath(fe), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: failed %s validation", fieldPath(fe), fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

// fieldPath renders a namespaced field like "api.base_url".
func fieldPath(fe validator.FieldError) string {
	// Namespace looks like "Config.API.BaseURL"; drop the struct name and
	// lower-case the rest for readability.
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.ToLower(strings.Join(parts, "."))
}
