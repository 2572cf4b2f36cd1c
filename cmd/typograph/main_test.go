package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args []string, stdin string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// isolateHome points config resolution at an empty directory so the
// developer's real configuration cannot leak into the tests.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestFormatFromStdin(t *testing.T) {
	isolateHome(t)

	out, _, err := runCLI(t, []string{"format"}, "Some 'text' whose formatting    could be enhanced...\n")
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if out != "Some ‘text’ whose formatting could be enhanced…\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestFormatFromFile(t *testing.T) {
	isolateHome(t)

	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("wait... -- <<here>>\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	out, _, err := runCLI(t, []string{"format", path}, "")
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if out != "wait… – «here»\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestFormatStageToggles(t *testing.T) {
	isolateHome(t)

	out, _, err := runCLI(t, []string{"format", "--no-ellipsis", "--no-quotes"}, "wait... 'here'\n")
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if out != "wait... 'here'\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestFormatFrenchTeXEscape(t *testing.T) {
	isolateHome(t)

	out, _, err := runCLI(t, []string{"format", "--french", "--escape", "tex"}, "Bonjour!\n")
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if out != "Bonjour~!\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestFormatRejectsNegativeThreshold(t *testing.T) {
	isolateHome(t)

	_, _, err := runCLI(t, []string{"format", "--threshold", "-3"}, "x\n")
	if err == nil || !strings.Contains(err.Error(), "threshold") {
		t.Fatalf("expected threshold error, got %v", err)
	}
}

func TestFrenchMarkup(t *testing.T) {
	isolateHome(t)

	out, _, err := runCLI(t, []string{"french", "--markup", "tex"}, "« Un test »\n")
	if err != nil {
		t.Fatalf("french failed: %v", err)
	}
	if out != "«~Un test~»\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestEscapeTargets(t *testing.T) {
	isolateHome(t)

	out, _, err := runCLI(t, []string{"escape", "html"}, "<foo> & <bar>\n")
	if err != nil {
		t.Fatalf("escape failed: %v", err)
	}
	if out != "&lt;foo&gt; &amp; &lt;bar&gt;\n" {
		t.Fatalf("unexpected output: %q", out)
	}

	_, _, err = runCLI(t, []string{"escape", "rot13"}, "x\n")
	if err == nil || !strings.Contains(err.Error(), "rot13") {
		t.Fatalf("expected unknown target error, got %v", err)
	}
}

func TestCapsCommand(t *testing.T) {
	isolateHome(t)

	out, _, err := runCLI(t, []string{"caps", "tex"}, "Some ACRONYM here.\n")
	if err != nil {
		t.Fatalf("caps failed: %v", err)
	}
	if out != `Some \textsc{acronym} here.`+"\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestTransformsListsEverything(t *testing.T) {
	isolateHome(t)

	out, _, err := runCLI(t, []string{"transforms"}, "")
	if err != nil {
		t.Fatalf("transforms failed: %v", err)
	}
	for _, want := range []string{"ellipsis", "quotes", "french", "caps", "nb-spaces-tex"} {
		if !strings.Contains(out, want) {
			t.Fatalf("transforms output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigInitValidateShow(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "config.toml")

	out, _, err := runCLI(t, []string{"config", "init", "--path", path}, "")
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Fatalf("init output missing path: %q", out)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", path}, ""); err == nil {
		t.Fatal("expected error when config already exists")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", path, "--overwrite"}, ""); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	out, _, err = runCLI(t, []string{"--config", path, "config", "validate"}, "")
	if err != nil {
		t.Fatalf("config validate failed: %v", err)
	}
	if !strings.Contains(out, "Configuration valid") {
		t.Fatalf("unexpected validate output: %q", out)
	}

	out, _, err = runCLI(t, []string{"--config", path, "config", "show"}, "")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(out, "threshold_quote = 20") {
		t.Fatalf("show output missing defaults: %q", out)
	}
}

func TestConfigFileDrivesFormatting(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[format]\nellipsis = false\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, _, err := runCLI(t, []string{"--config", path, "format"}, "wait...\n")
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if out != "wait...\n" {
		t.Fatalf("ellipsis rule should be disabled by config, got %q", out)
	}
}
