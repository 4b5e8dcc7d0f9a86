package cli

import (
	"errors"
	"fmt"
	"io"
)

var errNotConsole = errors.New("stdin is not a console")

// ExitError is a command outcome that maps onto a process exit status other
// than 0 or 1. Err is printed when breakwatch exits; it is nil when the
// outcome is already visible, e.g. a child's own exit code.
type ExitError struct {
	Code        int
	Interrupted bool // Ctrl-C arrived while it was held
	Err         error
}

func (e *ExitError) Error() string {
	switch {
	case e.Err != nil:
		return e.Err.Error()
	case e.Interrupted:
		return fmt.Sprintf("interrupted (exit %d)", e.Code)
	default:
		return fmt.Sprintf("exit %d", e.Code)
	}
}

func (e *ExitError) Unwrap() error { return e.Err }

// Report prints err for the user and returns the exit status breakwatch
// should terminate with.
func Report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		if ee.Err != nil {
			fmt.Fprintln(w, "breakwatch:", ee.Err)
		}
		return ee.Code
	}
	fmt.Fprintln(w, "breakwatch:", err)
	return 1
}
