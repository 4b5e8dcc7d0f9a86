package main

import (
	"context"
	"os"
	"runtime/debug"

	"github.com/srozzo/go-ctrlc/internal/cli"
)

// version is stamped by release builds with -ldflags "-X main.version=...".
var version string

func buildVersion() string {
	if version != "" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "dev"
}

func main() {
	err := cli.NewRoot(buildVersion()).ExecuteContext(context.Background())
	os.Exit(cli.Report(os.Stderr, err))
}
