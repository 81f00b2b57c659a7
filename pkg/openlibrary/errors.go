package openlibrary

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// RemoteError is returned when Open Library answers with a non-2xx status.
type RemoteError struct {
	StatusCode int
	URL        string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("open library returned status %d for %s", e.StatusCode, e.URL)
}

// DecodeError is returned when a response body is not valid JSON.
type DecodeError struct {
	URL string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("open library response from %s is not valid JSON", e.URL)
}

// ValidationError reports a tool argument that violates its constraints.
// It is always produced before any request is sent.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter '%s': %s", e.Field, e.Reason)
}

// IsRemoteStatus reports whether err carries a RemoteError with the given status.
func IsRemoteStatus(err error, status int) bool {
	var remote *RemoteError
	return errors.As(err, &remote) && remote.StatusCode == status
}

// fromValidator converts the first failing field of a validator error into a
// ValidationError.
func fromValidator(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.Wrap(err, "validate request")
	}

	fe := fieldErrs[0]
	return &ValidationError{Field: fe.Field(), Reason: reason(fe)}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		return fmt.Sprintf("failed '%s' constraint", fe.Tag())
	}
}
