package failures

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrIO              = errors.New("io failure")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotImplemented  = errors.New("not implemented")
)

// Wrap builds an error message that includes stage context while tagging it with
// the provided marker for later classification. The marker should be one of the
// exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Kind returns the taxonomy label for err, used as the error_kind log field.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrIO):
		return "io_failure"
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, ErrNotImplemented):
		return "not_implemented"
	default:
		return "unexpected"
	}
}

// Contained reports whether err is a per-file or per-root condition the
// pipeline absorbs instead of aborting.
func Contained(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrIO)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "scan failure"
	}
	return strings.Join(parts, ": ")
}
