package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type UnauthenticatedError struct {
	Msg string
}

func (e UnauthenticatedError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "not authenticated"
}

// MissingSessionError means a confirmation view has no payment session to resolve.
type MissingSessionError struct{}

func (MissingSessionError) Error() string { return "missing payment session id" }

// Payment stages distinguish a failed session creation from a failed redirect.
const (
	PaymentStageInitiation = "initiation"
	PaymentStageRedirect   = "redirect"
)

type PaymentError struct {
	Stage string
	Err   error
}

func (e PaymentError) Error() string {
	stage := e.Stage
	if stage == "" {
		stage = PaymentStageInitiation
	}
	if e.Err != nil {
		return fmt.Sprintf("payment %s failed: %v", stage, e.Err)
	}
	return fmt.Sprintf("payment %s failed", stage)
}

func (e PaymentError) Unwrap() error { return e.Err }

// MalformedResponseError marks an upstream body that failed schema validation.
type MalformedResponseError struct {
	Endpoint string
	Err      error
}

func (e MalformedResponseError) Error() string {
	if e.Endpoint != "" {
		return fmt.Sprintf("malformed response from %s", e.Endpoint)
	}
	return "malformed upstream response"
}

func (e MalformedResponseError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsUnauthenticated(err error) bool {
	var target UnauthenticatedError
	return errors.As(err, &target)
}

func IsMissingSession(err error) bool {
	var target MissingSessionError
	return errors.As(err, &target)
}

func IsPayment(err error) bool {
	var target PaymentError
	return errors.As(err, &target)
}

func IsMalformedResponse(err error) bool {
	var target MalformedResponseError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
