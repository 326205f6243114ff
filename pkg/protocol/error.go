// Package protocol defines the errors shared by the headset controllers and the orchestrator.
//
// Controller adapters return (possibly wrapped) sentinel errors from this package so that callers
// can classify failures with [errors.Is] without parsing controller output themselves.
package protocol

import (
	"errors"
	"fmt"
)

// Error exposes methods useful for categorizing errors.
type Error interface {
	error

	// MayHaveSucceeded returns true if the Error was triggered by a request that might have changed
	// host state anyway. For example, if the second half of a card profile change fails, the card
	// has already been switched off.
	MayHaveSucceeded() bool

	// Temporary returns true if the Error might be the result of a transient condition, such as a
	// headset that is powered off or out of range.
	Temporary() bool
}

var (
	// ErrInvalidAddress indicates the input is not a Bluetooth address of the form
	// XX:XX:XX:XX:XX:XX. No external controller is contacted when this error is returned.
	ErrInvalidAddress = NewError("not a valid Bluetooth address", false, false)
	// ErrInvalidRequest indicates a request parameter other than the address is unusable, such as
	// an empty profile or a non-positive timeout.
	ErrInvalidRequest = NewError("invalid request", false, false)
	// ErrDeviceUnavailable indicates the Bluetooth controller reported that the device is not
	// available.
	ErrDeviceUnavailable = NewError("device not available", false, true)
	// ErrConnectTimeout indicates the device was not reported as connected before the deadline.
	ErrConnectTimeout = NewError("timed out waiting for connection", true, true)
	// ErrEntityNotFound indicates an audio-server card or sink could not be found by name.
	ErrEntityNotFound = NewError("audio server entity not found", false, false)
	// ErrExternalProcess indicates a controller process could not be launched or exited with a
	// failure status.
	ErrExternalProcess = NewError("controller process failed", false, false)
)

type CommandError struct {
	Err               error
	PossibleSuccess   bool
	PossibleTemporary bool
}

func NewError(message string, mayHaveSucceeded bool, temporary bool) error {
	return &CommandError{Err: errors.New(message), PossibleSuccess: mayHaveSucceeded, PossibleTemporary: temporary}
}

func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

func (e *CommandError) MayHaveSucceeded() bool {
	return e.PossibleSuccess
}

func (e *CommandError) Temporary() bool {
	return e.PossibleTemporary
}

// PartialError indicates a multi-call operation failed after an earlier call had already changed
// host state. No rollback is attempted.
type PartialError struct {
	Details error
}

func (e *PartialError) Error() string {
	return e.Details.Error()
}

func (e *PartialError) Unwrap() error {
	return e.Details
}

func (e *PartialError) MayHaveSucceeded() bool {
	return true
}

func (e *PartialError) Temporary() bool {
	return Temporary(e.Details)
}

// StepError records which step of the connection sequence failed and the address or index it was
// operating on.
type StepError struct {
	Step    string
	Subject string
	Err     error
}

func (e *StepError) Error() string {
	if e.Subject == "" {
		return fmt.Sprintf("%s: %s", e.Step, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Step, e.Subject, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func (e *StepError) MayHaveSucceeded() bool {
	return MayHaveSucceeded(e.Err)
}

func (e *StepError) Temporary() bool {
	return Temporary(e.Err)
}

// MayHaveSucceeded returns true if err (or an error it wraps) indicates that host state may have
// been modified before the failure.
func MayHaveSucceeded(err error) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if commErr, ok := err.(Error); ok && commErr.MayHaveSucceeded() {
			return true
		}
	}
	return false
}

// Temporary returns true if err (or an error it wraps) indicates a possibly transient condition.
func Temporary(err error) bool {
	var commErr Error
	if errors.As(err, &commErr) && commErr.Temporary() {
		return true
	}
	return false
}
