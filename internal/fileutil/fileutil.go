// Package fileutil provides small path helpers shared by the CLI.
package fileutil

import (
	"path/filepath"
	"strings"
)

// IsFilePath reports whether s looks like a file path rather than a bare
// name (it contains a path separator).
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, `/\`)
}

// HasMarkdownExt reports whether path has a .md or .markdown extension
// (case-insensitive).
func HasMarkdownExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// JSONOutputPath derives the output path for a markdown input: the same
// path with the extension replaced by .json.
func JSONOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + ".json"
}
