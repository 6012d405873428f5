package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mountmix/shared/failure"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// Report field names as they appear on the wire.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0] //nolint:mnd
		if name == "-" {
			return ""
		}

		return name
	})
}

// Normalizer is implemented by request DTOs that need their input cleaned up
// (trimming, case folding, blank-to-null) before validation runs.
type Normalizer interface {
	Normalize()
}

// Validate reads from the given io.Reader into the given struct, normalizes it
// when the struct implements Normalizer, and then performs validation using the
// validator package. Validation failures are returned as a failure carrying
// per-field messages.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	// An empty body reads as io.EOF; treat it like `{}` so zero-field
	// payloads still reach validation instead of failing to decode.
	if err != nil && !errors.Is(err, io.EOF) {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	if n, ok := any(data).(Normalizer); ok {
		n.Normalize()
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		fields := fieldMessages(err)
		if len(fields) == 0 {
			return failure.BadRequestFromString(err.Error()) //nolint:wrapcheck
		}

		return failure.Validation(fields) //nolint:wrapcheck
	}

	return nil
}
