package main

import (
	"encoding/json"
	"fmt"

	md2docs "github.com/alnah/go-md2docs"
)

// runCheck reports markdown constructs that convert will degrade to plain
// text. Exit codes: 0 = clean, 1 = diagnostics found, 2/3 = usage or I/O.
func runCheck(args []string, deps *Dependencies) int {
	flags := &checkFlags{}
	fs := newCheckFlagSet(flags)
	fs.SetOutput(deps.Stderr)
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fmt.Fprintln(deps.Stderr, ErrNoInput)
		return ExitUsage
	}

	content, err := readInput(rest[0], deps)
	if err != nil {
		fmt.Fprintln(deps.Stderr, err)
		return ExitIO
	}

	diags := md2docs.CheckCompatibility(content)

	if flags.jsonOutput {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(diags)
	} else if len(diags) == 0 {
		fmt.Fprintln(deps.Stdout, "No compatibility issues found")
	} else {
		for _, d := range diags {
			if d.Line > 0 {
				fmt.Fprintf(deps.Stdout, "line %d: %s: %s\n", d.Line, d.Construct, d.Detail)
			} else {
				fmt.Fprintf(deps.Stdout, "%s: %s\n", d.Construct, d.Detail)
			}
		}
	}

	if len(diags) > 0 {
		return ExitGeneral
	}
	return ExitSuccess
}
