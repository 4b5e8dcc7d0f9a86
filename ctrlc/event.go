package ctrlc

import "fmt"

// Event identifies a console control event. The values match the Win32
// control codes passed to a console handler routine; on unix platforms the
// closest signal is translated to the same identifiers.
type Event uint32

const (
	CtrlC        Event = 0
	CtrlBreak    Event = 1
	CtrlClose    Event = 2
	CtrlLogoff   Event = 5
	CtrlShutdown Event = 6
)

// Watched is the only event a Suppressor intercepts.
const Watched = CtrlC

func (e Event) String() string {
	switch e {
	case CtrlC:
		return "ctrl-c"
	case CtrlBreak:
		return "ctrl-break"
	case CtrlClose:
		return "close"
	case CtrlLogoff:
		return "logoff"
	case CtrlShutdown:
		return "shutdown"
	default:
		return fmt.Sprintf("event(%d)", uint32(e))
	}
}
