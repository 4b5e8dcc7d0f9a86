package ctrlc

import (
	"errors"
	"fmt"
)

var (
	ErrRegistration     = errors.New("ctrlc: console handler registration failed")
	ErrUnsupported      = errors.New("ctrlc: console control events not supported on this platform")
	ErrAlreadyInstalled = errors.New("ctrlc: handler already installed")
	ErrNotInstalled     = errors.New("ctrlc: handler not installed")
)

// RegistrationError reports a Registrar failure while installing or removing
// the suppressor's handler. It matches ErrRegistration with errors.Is.
type RegistrationError struct {
	Op  string // "install" or "remove"
	Err error
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("ctrlc: %s handler: %v", e.Op, e.Err)
}

func (e *RegistrationError) Unwrap() error { return e.Err }

func (e *RegistrationError) Is(target error) bool { return target == ErrRegistration }
