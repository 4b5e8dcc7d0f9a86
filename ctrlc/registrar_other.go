//go:build !unix && !windows

package ctrlc

var systemRegistrar Registrar = unsupportedRegistrar{}

type unsupportedRegistrar struct{}

func (unsupportedRegistrar) Install(Handler) error { return ErrUnsupported }

func (unsupportedRegistrar) Remove(Handler) error { return ErrNotInstalled }
