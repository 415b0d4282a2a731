package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/rtstart/internal/app"
	"github.com/vk/rtstart/internal/ctxlog"
)

// MaxArgs is the number of positional arguments understood by Parse.
const MaxArgs = 4

// ExitCodeTooManyArgs is returned when more than MaxArgs arguments are given.
// The OS reports it as 255.
const ExitCodeTooManyArgs = -1

// ErrTooManyArguments is wrapped by the *ExitError returned from Parse.
var ErrTooManyArguments = errors.New("unsupported argument")

// ExitError is an error that carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Parse applies args (program name excluded) over app.DefaultSettings in
// order: interval seconds, interval milliseconds, log threshold
// milliseconds, priority. Arguments are parsed best-effort; see Atoi.
//
// A fifth argument stops parsing with an *ExitError. The settings
// assigned up to that point are still returned.
func Parse(ctx context.Context, args []string) (app.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("CLI parser started.", "argc", len(args))

	settings := app.DefaultSettings()
	fields := []*int{
		&settings.IntervalSec,
		&settings.IntervalMsec,
		&settings.LogThresholdMsec,
		&settings.Priority,
	}

	for i, raw := range args {
		if i >= len(fields) {
			logger.Error("Unsupported argument.", "index", i+1, "value", raw)
			return settings, &ExitError{
				Code:    ExitCodeTooManyArgs,
				Message: fmt.Sprintf("%v: expected at most %d arguments, got %d", ErrTooManyArguments, MaxArgs, len(args)),
				Err:     ErrTooManyArguments,
			}
		}

		v, clean := Atoi(raw)
		if !clean {
			logger.Warn("Argument is not a clean integer, coerced.", "index", i+1, "value", raw, "parsed", v)
		}
		*fields[i] = v
		logger.Debug("Argument parsed.", "index", i+1, "value", v)
	}

	logger.Debug("CLI parser finished successfully.", "settings", settings)
	return settings, nil
}
