package failure

import (
	"errors"
	"fmt"
)

// Kind classifies a Failure so callers can branch without string matching.
type Kind int

const (
	// KindConfig marks definition-time misconfiguration. Fatal: raised once,
	// before any record is processed.
	KindConfig Kind = iota + 1

	// KindValidation marks caller input rejected at the explicit validation
	// step (e.g. an identifier outside the known set).
	KindValidation

	// KindStorage marks a persistence-layer write that failed even after
	// capability degradation.
	KindStorage
)

// Failure is a wrapper for error messages carrying a Kind classification.
type Failure struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (e *Failure) Error() string {
	return e.Message
}

// Config returns a new definition-time configuration Failure.
func Config(format string, args ...any) error {
	return &Failure{
		Kind:    KindConfig,
		Message: fmt.Sprintf(format, args...),
	}
}

// Validation returns a new Failure for rejected caller input.
func Validation(msg string) error {
	return &Failure{
		Kind:    KindValidation,
		Message: msg,
	}
}

// UnknownTimezone returns the validation Failure for an identifier that is
// not in the known IANA set.
func UnknownTimezone(name string) error {
	return &Failure{
		Kind:    KindValidation,
		Message: fmt.Sprintf("unknown timezone %q", name),
	}
}

// Storage returns a new Failure for persistence errors, wrapping the cause
// message.
func Storage(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindStorage,
			Message: err.Error(),
		}
	}

	return nil
}

// GetKind returns the Kind of an error interface, or zero when the error is
// not a Failure.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return 0
}

// IsValidation reports whether err is a validation Failure.
func IsValidation(err error) bool {
	return GetKind(err) == KindValidation
}

// IsConfig reports whether err is a configuration Failure.
func IsConfig(err error) bool {
	return GetKind(err) == KindConfig
}
