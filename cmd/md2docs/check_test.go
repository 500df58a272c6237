package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	md2docs "github.com/alnah/go-md2docs"
)

func TestRunCheck_Clean(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := testDeps("# Title\n\nJust **text**.\n")
	if code := runCheck([]string{"-"}, deps); code != ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout.String(), "No compatibility issues") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunCheck_FindingsExitOne(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := testDeps("intro\n\n> a quote\n")
	if code := runCheck([]string{"-"}, deps); code != ExitGeneral {
		t.Errorf("exit code = %d, want %d", code, ExitGeneral)
	}
	if !strings.Contains(stdout.String(), "line 3: block quote:") {
		t.Errorf("stdout = %q, want block quote diagnostic", stdout.String())
	}
}

func TestRunCheck_JSON(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := testDeps("![img](x.png)\n")
	if code := runCheck([]string{"-", "--json"}, deps); code != ExitGeneral {
		t.Errorf("exit code = %d, want %d", code, ExitGeneral)
	}

	var diags []md2docs.Diagnostic
	if err := json.Unmarshal(stdout.Bytes(), &diags); err != nil {
		t.Fatalf("stdout is not valid JSON: %v", err)
	}
	if len(diags) != 1 || diags[0].Construct != "image" {
		t.Errorf("diagnostics = %#v, want one image finding", diags)
	}
}

func TestRunCheck_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte("| a |\n|---|\n| 1 |\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deps, stdout, _ := testDeps("")
	if code := runCheck([]string{path}, deps); code != ExitGeneral {
		t.Errorf("exit code = %d, want %d", code, ExitGeneral)
	}
	if !strings.Contains(stdout.String(), "table") {
		t.Errorf("stdout = %q, want table diagnostic", stdout.String())
	}
}

func TestRunCheck_Usage(t *testing.T) {
	t.Parallel()

	deps, _, _ := testDeps("")
	if code := runCheck(nil, deps); code != ExitUsage {
		t.Errorf("no input exit code = %d, want %d", code, ExitUsage)
	}

	deps, _, _ = testDeps("")
	if code := runCheck([]string{"--nope"}, deps); code != ExitUsage {
		t.Errorf("bad flag exit code = %d, want %d", code, ExitUsage)
	}
}

func TestRunCheck_MissingFile(t *testing.T) {
	t.Parallel()

	deps, _, stderr := testDeps("")
	if code := runCheck([]string{"no-such.md"}, deps); code != ExitIO {
		t.Errorf("exit code = %d, want %d", code, ExitIO)
	}
	if stderr.Len() == 0 {
		t.Error("stderr is empty, want an error message")
	}
}
