package main

import (
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common          commonFlags
	output          string
	compact         bool
	replaceEndIndex int64
	codeFont        string
	codeBackground  string
	numberedPreset  string
	bulletPreset    string
}

// newConvertFlagSet builds the flag set for the convert command.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.StringVarP(&f.common.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.common.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.common.verbose, "verbose", "v", false, "show per-file detail")
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.BoolVar(&f.compact, "compact", false, "emit compact JSON instead of indented")
	fs.Int64Var(&f.replaceEndIndex, "replace-end-index", 0,
		"document end index for a full replace (adds the delete request)")
	fs.StringVar(&f.codeFont, "code-font", "", "font family for code blocks")
	fs.StringVar(&f.codeBackground, "code-background", "", "code block background (#rrggbb)")
	fs.StringVar(&f.numberedPreset, "numbered-preset", "", "bullet preset for ordered lists (NUMBERED_*)")
	fs.StringVar(&f.bulletPreset, "bullet-preset", "", "bullet preset for unordered lists (BULLET_*)")
	return fs
}

// checkFlags holds flags for the check command.
type checkFlags struct {
	jsonOutput bool
}

// newCheckFlagSet builds the flag set for the check command.
func newCheckFlagSet(f *checkFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.BoolVar(&f.jsonOutput, "json", false, "output diagnostics as JSON")
	return fs
}
