package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// maxprocs.Set only fails on an invalid GOMAXPROCS env value, in which
	// case the runtime default applies. The logger is silent.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(run(os.Args[1:], DefaultDeps()))
}

// run dispatches a command and returns the process exit code.
// An unrecognized first argument is treated as input to convert, so
// "md2docs notes.md" works without naming the command.
func run(args []string, deps *Dependencies) int {
	if len(args) == 0 {
		printUsage(deps.Stderr)
		return ExitUsage
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(deps.Stdout, "md2docs %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(args[1:], deps)
		return ExitSuccess
	case "check":
		return runCheck(args[1:], deps)
	case "convert":
		args = args[1:]
	}

	if err := runConvert(args, deps); err != nil {
		fmt.Fprintln(deps.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
