package service

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/net/idna"

	"github.com/lightbnb/api/internal/dto"
)

var idnaProfile = idna.Lookup

// ValidationError indicates that caller input was rejected before reaching the store.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return e.Message
}

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var vErr ValidationError
	return errors.As(err, &vErr)
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// validateStruct runs tag validation and converts failures into a ValidationError.
func validateStruct(v *validator.Validate, payload any) error {
	err := v.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate payload: %w", err)
	}

	fields := make(map[string]string, len(fieldErrs))
	names := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		fields[fe.Field()] = rule
		names = append(names, fe.Field())
	}
	sort.Strings(names)

	return ValidationError{
		Message: fmt.Sprintf("invalid fields: %s", strings.Join(names, ", ")),
		Fields:  fields,
	}
}

// checkID rejects identifiers outside the range of an integer column.
func checkID(field string, id int64) error {
	if id <= 0 || id > dto.MaxColumnInt {
		return ValidationError{
			Message: fmt.Sprintf("invalid %s", field),
			Fields:  map[string]string{field: "gt=0,lte=" + strconv.Itoa(dto.MaxColumnInt)},
		}
	}
	return nil
}

// normalizeLimit replaces a zero limit with fallback and rejects negative or oversized ones.
func normalizeLimit(limit, fallback int) (int, error) {
	switch {
	case limit < 0:
		return 0, ValidationError{Message: "limit must not be negative", Fields: map[string]string{"limit": "gte=0"}}
	case limit > dto.MaxColumnInt:
		return 0, ValidationError{Message: "limit is too large", Fields: map[string]string{"limit": "lte=" + strconv.Itoa(dto.MaxColumnInt)}}
	case limit == 0:
		return fallback, nil
	}
	return limit, nil
}

// normalizeEmail lower-cases the address and converts its domain to ASCII.
func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", ValidationError{Message: "invalid email", Fields: map[string]string{"email": "email"}}
	}

	asciiDomain, err := idnaProfile.ToASCII(email[at+1:])
	if err != nil || asciiDomain == "" || !isDomainValid(asciiDomain) {
		return "", ValidationError{Message: "invalid email domain", Fields: map[string]string{"email": "email"}}
	}
	return email[:at+1] + asciiDomain, nil
}

func isDomainValid(domain string) bool {
	if strings.Count(domain, ".") == 0 {
		return false
	}
	parts := strings.Split(domain, ".")
	for _, part := range parts {
		if part == "" || strings.HasPrefix(part, "-") || strings.HasSuffix(part, "-") {
			return false
		}
	}
	return true
}
