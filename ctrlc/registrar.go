package ctrlc

// Handler receives console control events from a Registrar. HandleControl
// reports whether the event was handled; false lets the operating system
// apply its default action.
//
// HandleControl may be called on an operating system thread concurrently
// with anything else the program is doing.
type Handler interface {
	HandleControl(ev Event) bool
}

// Registrar abstracts the operating system's console control handler list.
// It is primarily useful for injecting fakes during testing.
//
// Install routes control events to h instead of the default action until
// Remove is called with the same h. Implementations may invoke h
// synchronously from within Install or Remove.
type Registrar interface {
	Install(h Handler) error
	Remove(h Handler) error
}

// SystemRegistrar returns the process-wide registrar for the current platform.
func SystemRegistrar() Registrar { return systemRegistrar }
