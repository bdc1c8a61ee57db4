package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to command failures so API consumers and logs can
// tell validation problems from execution problems without parsing
// messages.
const (
	siteCommandValidationCode = "SITE_COMMAND_VALIDATION_FAILED"
	siteCommandCanceledCode   = "SITE_COMMAND_CANCELED"
	siteCommandTimeoutCode    = "SITE_COMMAND_TIMEOUT"
	siteCommandContextCode    = "SITE_COMMAND_CONTEXT_ERROR"
	siteCommandExecuteCode    = "SITE_COMMAND_EXECUTION_FAILED"
)

// wrapValidationError categorises message Validate() failures, typically
// ozzo validation.Errors from the per-collection command packages.
func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "site command rejected by validation").
		WithTextCode(siteCommandValidationCode)
}

func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "site command canceled").
			WithTextCode(siteCommandCanceledCode)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "site command deadline exceeded").
			WithTextCode(siteCommandTimeoutCode)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "site command context error").
			WithTextCode(siteCommandContextCode)
	}
}

// wrapExecuteError categorises failures surfaced by the gateway or the
// content services; already-wrapped errors pass through untouched so
// sentinel checks keep working upstream.
func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "site command execution failed").
		WithTextCode(siteCommandExecuteCode)
}
