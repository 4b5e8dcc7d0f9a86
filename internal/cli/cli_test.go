package cli

import (
	"bytes"
	"testing"

	"github.com/srozzo/go-ctrlc/ctrlc/ctrlctest"
)

type harness struct {
	fake    *ctrlctest.FakeRegistrar
	console bool
	stdout  bytes.Buffer
	stderr  bytes.Buffer
}

func newHarness() *harness {
	return &harness{fake: ctrlctest.New(), console: true}
}

func (h *harness) execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRoot("test", runtimeDeps{
		registrar: h.fake,
		isConsole: func() bool { return h.console },
	})
	cmd.SetOut(&h.stdout)
	cmd.SetErr(&h.stderr)
	cmd.SetArgs(args)
	return cmd.Execute()
}
