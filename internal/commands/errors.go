package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to wrapped command errors so hosts can match on the
// failure stage without parsing messages.
const (
	codeValidationFailed = "TAGDOWN_COMMAND_VALIDATION_FAILED"
	codeContextCanceled  = "TAGDOWN_COMMAND_CANCELED"
	codeContextTimeout   = "TAGDOWN_COMMAND_TIMEOUT"
	codeContextFailed    = "TAGDOWN_COMMAND_CONTEXT_FAILED"
	codeExecutionFailed  = "TAGDOWN_COMMAND_EXECUTION_FAILED"
)

// wrapCommandError normalizes an error into the module's goerrors shape.
// Errors already wrapped upstream pass through untouched so handlers that
// return goerrors values keep their original category and code.
func wrapCommandError(err error, category goerrors.Category, code, message string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, category, message).WithTextCode(code)
}

func wrapValidationError(err error) error {
	return wrapCommandError(err, goerrors.CategoryValidation,
		codeValidationFailed, "command message failed validation")
}

func wrapContextError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return wrapCommandError(err, goerrors.CategoryCommand,
			codeContextCanceled, "command canceled before completion")
	case errors.Is(err, context.DeadlineExceeded):
		return wrapCommandError(err, goerrors.CategoryCommand,
			codeContextTimeout, "command deadline exceeded")
	default:
		return wrapCommandError(err, goerrors.CategoryCommand,
			codeContextFailed, "command context failed")
	}
}

func wrapExecuteError(err error) error {
	return wrapCommandError(err, goerrors.CategoryCommand,
		codeExecutionFailed, "command execution failed")
}
