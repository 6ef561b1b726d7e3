// internal/app/system/schema/schema.go

// Package schema validates entity payloads before any store call. Each
// entity declares its shape with struct tags; a failure comes back as a
// webapi.ValidationError listing the offending fields by their wire names.
package schema

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pulseboard/pulseboard/internal/app/system/webapi"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON name so clients see the key they sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks doc against its declared constraints. On failure the
// returned error is a *webapi.ValidationError naming every bad field.
func Validate(doc any) error {
	err := validate.Struct(doc)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &webapi.ValidationError{Fields: fields}
}

// ValidatePartial checks only the named struct fields of doc, for partial
// updates where absent fields must not trip their required tags.
func ValidatePartial(doc any, structFields ...string) error {
	if len(structFields) == 0 {
		return nil
	}
	err := validate.StructPartial(doc, structFields...)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &webapi.ValidationError{Fields: fields}
}
