package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docs <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Compile markdown into Google Docs batchUpdate JSON (default)")
	fmt.Fprintln(w, "  check      Report markdown constructs that lose formatting")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2docs help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docs convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Compile markdown into the JSON body for documents.batchUpdate.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file, directory, or \"-\" for stdin")
	fmt.Fprintln(w, "           (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>           Output file or directory (stdin defaults to stdout)")
	fmt.Fprintln(w, "  -c, --config <name>           Config file name or path")
	fmt.Fprintln(w, "      --compact                 Emit compact JSON instead of indented")
	fmt.Fprintln(w, "      --replace-end-index <n>   Document end index for a full replace;")
	fmt.Fprintln(w, "                                prepends the delete-prior-content request")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --code-font <s>           Font family for code blocks")
	fmt.Fprintln(w, "      --code-background <s>     Code block background (#rrggbb)")
	fmt.Fprintln(w, "      --numbered-preset <s>     Bullet preset for ordered lists (NUMBERED_*)")
	fmt.Fprintln(w, "      --bullet-preset <s>       Bullet preset for unordered lists (BULLET_*)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                   Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                 Show per-file detail")
}

// runHelp prints help for a specific command.
func runHelp(args []string, deps *Dependencies) {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(deps.Stdout)
	case "check":
		fmt.Fprintln(deps.Stdout, "Usage: md2docs check <input> [--json]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Report markdown constructs (tables, block quotes, raw HTML, images,")
		fmt.Fprintln(deps.Stdout, "nested lists) that convert passes through as plain text.")
		fmt.Fprintln(deps.Stdout, "Exits 1 when any are found.")
	case "version":
		fmt.Fprintln(deps.Stdout, "Usage: md2docs version")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(deps.Stdout, "Usage: md2docs help [command]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", args[0])
		printUsage(deps.Stderr)
	}
}
