package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	md2docs "github.com/alnah/go-md2docs"
	"github.com/alnah/go-md2docs/internal/config"
	"github.com/alnah/go-md2docs/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrBadFlags         = errors.New("invalid flags")
	ErrNoInput          = errors.New("no input specified")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrWriteOutput      = errors.New("failed to write output file")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
	ErrReplaceIndex     = errors.New("replace end index must be at least 2")
	ErrReplaceBatch     = errors.New("a full replace needs a single input file")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// fileToConvert represents a single file to process. An empty OutputPath
// means write to stdout.
type fileToConvert struct {
	InputPath  string
	OutputPath string
}

// runConvert orchestrates the conversion process: load config, merge
// flags, discover inputs, compile each file and write the batchUpdate
// JSON body.
func runConvert(args []string, deps *Dependencies) error {
	flags := &convertFlags{}
	fs := newConvertFlagSet(flags)
	fs.SetOutput(deps.Stderr)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrBadFlags, err)
	}

	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	opts, err := compilerOptions(cfg)
	if err != nil {
		return err
	}
	compiler := md2docs.NewCompiler(opts...)

	files, err := resolveFiles(fs.Args(), flags, cfg)
	if err != nil {
		return err
	}

	if flags.replaceEndIndex != 0 {
		if flags.replaceEndIndex < 2 {
			return fmt.Errorf("%w: %d", ErrReplaceIndex, flags.replaceEndIndex)
		}
		if len(files) > 1 {
			return ErrReplaceBatch
		}
	}

	for _, file := range files {
		start := time.Now()
		if err := convertFile(compiler, file, flags, deps); err != nil {
			return err
		}
		if flags.common.verbose {
			fmt.Fprintf(deps.Stderr, "%s -> %s (%s)\n",
				displayPath(file.InputPath), displayPath(file.OutputPath), time.Since(start).Round(time.Microsecond))
		}
	}

	if !flags.common.quiet && !flags.common.verbose && writesToDisk(files) {
		fmt.Fprintf(deps.Stderr, "Wrote %d file(s)\n", len(files))
	}
	return nil
}

// convertFile compiles one markdown source and writes the request JSON.
func convertFile(compiler *md2docs.Compiler, file fileToConvert, flags *convertFlags, deps *Dependencies) error {
	content, err := readInput(file.InputPath, deps)
	if err != nil {
		return err
	}

	result := compiler.Compile(content)

	var reqs []md2docs.Request
	if flags.replaceEndIndex != 0 {
		reqs = md2docs.ReplaceContentRequests(result.Operations, flags.replaceEndIndex)
	} else {
		reqs = md2docs.Requests(result.Operations)
	}
	body := md2docs.BatchUpdate{Requests: reqs}

	var payload []byte
	if flags.compact {
		payload, err = json.Marshal(body)
	} else {
		payload, err = json.MarshalIndent(body, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encoding requests: %w", err)
	}
	payload = append(payload, '\n')

	if file.OutputPath == "" {
		_, err = deps.Stdout.Write(payload)
		return err
	}
	if dir := filepath.Dir(file.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}
	if err := os.WriteFile(file.OutputPath, payload, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// readInput reads a markdown source; "-" means stdin.
func readInput(path string, deps *Dependencies) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	return string(data), nil
}

// resolveFiles expands the positional input into the list of files to
// convert with their destinations.
//
// Input resolution: the positional argument wins; otherwise the config's
// input.defaultDir. "-" reads stdin and defaults to stdout. A directory is
// walked recursively for markdown files, mirrored under the output
// directory with .json extensions; a single file goes to --output or next
// to the source.
func resolveFiles(positional []string, flags *convertFlags, cfg *config.Config) ([]fileToConvert, error) {
	inputPath := ""
	switch {
	case len(positional) > 0:
		inputPath = positional[0]
	case cfg.Input.DefaultDir != "":
		inputPath = cfg.Input.DefaultDir
	default:
		return nil, ErrNoInput
	}

	outputDir := flags.output
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	if inputPath == "-" {
		return []fileToConvert{{InputPath: "-", OutputPath: flags.output}}, nil
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	if !info.IsDir() {
		if !fileutil.HasMarkdownExt(inputPath) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidExtension, inputPath)
		}
		out := flags.output
		if out == "" {
			if cfg.Output.DefaultDir != "" {
				out = filepath.Join(cfg.Output.DefaultDir, filepath.Base(fileutil.JSONOutputPath(inputPath)))
			} else {
				out = fileutil.JSONOutputPath(inputPath)
			}
		}
		return []fileToConvert{{InputPath: inputPath, OutputPath: out}}, nil
	}

	return discoverFiles(inputPath, outputDir)
}

// discoverFiles walks a directory tree collecting markdown files. Output
// paths mirror the input tree under outputDir, or sit next to each source
// when outputDir is empty.
func discoverFiles(root, outputDir string) ([]fileToConvert, error) {
	var files []fileToConvert
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !fileutil.HasMarkdownExt(path) {
			return nil
		}
		out := fileutil.JSONOutputPath(path)
		if outputDir != "" {
			rel, relErr := filepath.Rel(root, out)
			if relErr != nil {
				return relErr
			}
			out = filepath.Join(outputDir, rel)
		}
		files = append(files, fileToConvert{InputPath: path, OutputPath: out})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no markdown files in %s", ErrNoInput, root)
	}
	return files, nil
}

// mergeFlags overlays CLI flags onto the loaded config.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.codeFont != "" {
		cfg.Code.Font = flags.codeFont
	}
	if flags.codeBackground != "" {
		cfg.Code.Background = flags.codeBackground
	}
	if flags.numberedPreset != "" {
		cfg.Lists.Numbered = flags.numberedPreset
	}
	if flags.bulletPreset != "" {
		cfg.Lists.Bullet = flags.bulletPreset
	}
	if flags.compact {
		cfg.Output.Compact = true
	}
	flags.compact = cfg.Output.Compact
}

// compilerOptions translates config values into compiler options.
func compilerOptions(cfg *config.Config) ([]md2docs.Option, error) {
	var opts []md2docs.Option
	if cfg.Code.Font != "" {
		opts = append(opts, md2docs.WithCodeFont(cfg.Code.Font))
	}
	if cfg.Code.Background != "" {
		r, g, b, err := config.ParseHexColor(cfg.Code.Background)
		if err != nil {
			return nil, err
		}
		opts = append(opts, md2docs.WithCodeBackground(md2docs.Color{Red: r, Green: g, Blue: b}))
	}
	if cfg.Lists.Numbered != "" {
		opts = append(opts, md2docs.WithNumberedPreset(md2docs.ListPreset(cfg.Lists.Numbered)))
	}
	if cfg.Lists.Bullet != "" {
		opts = append(opts, md2docs.WithBulletPreset(md2docs.ListPreset(cfg.Lists.Bullet)))
	}
	return opts, nil
}

// displayPath renders "-"/"" as the stream they stand for.
func displayPath(path string) string {
	switch path {
	case "-":
		return "stdin"
	case "":
		return "stdout"
	}
	return path
}

// writesToDisk reports whether any conversion targets a file.
func writesToDisk(files []fileToConvert) bool {
	for _, f := range files {
		if f.OutputPath != "" {
			return true
		}
	}
	return false
}
