// Command majority prints the strict majority element of a list read from a
// file or stdin, or serves the same vote over HTTP.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrymomot/majority/pkg/majority"
)

// Exit codes.
const (
	exitOK         = 0
	exitError      = 1
	exitBadInput   = 2
	exitNoMajority = 3
)

// Set with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr, nil))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, env map[string]string) int {
	cfg, err := loadConfig(env)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	cmd := newRootCmd(cfg)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCode(err)
	}
	return exitOK
}

func exitCode(err error) int {
	switch majority.KindOf(err) {
	case majority.KindNullInput, majority.KindEmptyInput:
		return exitBadInput
	case majority.KindNoMajority:
		return exitNoMajority
	default:
		return exitError
	}
}
