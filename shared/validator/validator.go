package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"tzfield/shared/failure"
	"tzfield/zones"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func registerTimezoneValidation(field val.FieldLevel) bool {
	name, ok := field.Field().Interface().(string)
	if !ok {
		stringer, ok := field.Field().Interface().(fmt.Stringer)
		if !ok {
			return false
		}

		name = stringer.String()
	}

	return zones.Has(name)
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("iana_tz", registerTimezoneValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		empty := fl.Field().IsZero()

		return empty
	})

	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.Validation(fmt.Sprintf("failed to decode request body: %v", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.Validation(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.Validation(msg) //nolint:wrapcheck
	}

	return nil
}
