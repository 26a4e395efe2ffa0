package cmd

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/sudacode/thumburl/errors"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunUnsafe(t *testing.T) {
	cfg := writeConfigFile(t, "THUMBOR_BASE_URL=https://img.example.com\n")

	out, err := execute(t,
		"-e", cfg, "-u", "-W", "300", "-H", "200",
		"http://example.com/a b.jpg",
	)
	if err != nil {
		t.Fatal(err)
	}

	want := "URL: https://img.example.com/unsafe/300x200/smart/http%3A%2F%2Fexample.com%2Fa%20b.jpg"
	if !strings.Contains(out, want) {
		t.Errorf("output %q missing %q", out, want)
	}
}

func TestRunUnsafeNoSmart(t *testing.T) {
	cfg := writeConfigFile(t, "THUMBOR_BASE_URL=https://img.example.com\n")

	out, err := execute(t,
		"-e", cfg, "-u", "-W", "300", "-H", "200", "--smart=false",
		"http://example.com/img.jpg",
	)
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(out, "/smart/") {
		t.Errorf("output %q should not contain a smart segment", out)
	}
	if !strings.Contains(out, "/unsafe/300x200/http%3A%2F%2Fexample.com%2Fimg.jpg") {
		t.Errorf("output %q missing the expected path", out)
	}
}

func TestRunSafe(t *testing.T) {
	cfg := writeConfigFile(t, `THUMBOR_BASE_URL=https://img.example.com
THUMBOR_KEY=secret
`)

	out, err := execute(t, "-e", cfg, "example.com/img.jpg")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "URL: https://img.example.com/") {
		t.Errorf("output %q missing the labelled URL", out)
	}
	if strings.Contains(out, "/unsafe/") {
		t.Errorf("safe run produced an unsafe URL: %q", out)
	}

	// Deterministic across runs.
	again, err := execute(t, "-e", cfg, "example.com/img.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if out != again {
		t.Errorf("safe output not deterministic: %q vs %q", out, again)
	}
}

func TestRunSafeMissingKey(t *testing.T) {
	cfg := writeConfigFile(t, "THUMBOR_BASE_URL=https://img.example.com\n")

	_, err := execute(t, "-e", cfg, "example.com/img.jpg")
	if err == nil {
		t.Fatal("expected a signing error without THUMBOR_KEY")
	}
	if !stderrors.Is(err, &apperrors.AppError{Type: apperrors.ErrorTypeSigning}) {
		t.Errorf("expected signing error, got %v", err)
	}
	if got := apperrors.ExitStatus(err); got != apperrors.ExitSigning {
		t.Errorf("ExitStatus = %d, want %d", got, apperrors.ExitSigning)
	}
}

func TestRunZeroDimensions(t *testing.T) {
	cfg := writeConfigFile(t, "THUMBOR_BASE_URL=https://img.example.com\n")

	_, err := execute(t, "-e", cfg, "-u", "-W", "0", "-H", "0", "example.com/img.jpg")
	if err == nil {
		t.Fatal("expected a configuration error for zero dimensions")
	}
	if !stderrors.Is(err, &apperrors.AppError{Type: apperrors.ErrorTypeConfiguration}) {
		t.Errorf("expected configuration error, got %v", err)
	}
}

func TestRunMissingConfigFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	_, err := execute(t, "-e", missing, "example.com/img.jpg")
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
	if got := apperrors.ExitStatus(err); got != apperrors.ExitConfiguration {
		t.Errorf("ExitStatus = %d, want %d", got, apperrors.ExitConfiguration)
	}
}

func TestRunFilePrecedence(t *testing.T) {
	// File sets the dimensions; no flags are passed, so the file wins
	// over the built-in defaults.
	cfg := writeConfigFile(t, `THUMBOR_BASE_URL=https://img.example.com
UNSAFE=True
WIDTH=640
HEIGHT=480
`)

	out, err := execute(t, "-e", cfg, "example.com/img.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "/unsafe/640x480/") {
		t.Errorf("output %q missing file-configured dimensions", out)
	}

	// An explicit flag beats the file.
	out, err = execute(t, "-e", cfg, "-W", "100", "example.com/img.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "/unsafe/100x480/") {
		t.Errorf("output %q: explicit -W should beat WIDTH in the file", out)
	}
}

func TestRunJSONOutput(t *testing.T) {
	cfg := writeConfigFile(t, "THUMBOR_BASE_URL=https://img.example.com\n")

	out, err := execute(t, "-e", cfg, "-u", "-o", "json", "example.com/img.jpg")
	if err != nil {
		t.Fatal(err)
	}

	var res result
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &res); err != nil {
		t.Fatalf("output %q is not valid JSON: %v", out, err)
	}
	if !strings.HasPrefix(res.URL, "https://img.example.com/unsafe/800x0/") {
		t.Errorf("URL = %q", res.URL)
	}
	if res.Width != 800 || res.Height != 0 || !res.Smart || !res.Unsafe {
		t.Errorf("unexpected result fields: %+v", res)
	}
}

func TestRunBadOutputFormat(t *testing.T) {
	cfg := writeConfigFile(t, "THUMBOR_BASE_URL=https://img.example.com\n")

	_, err := execute(t, "-e", cfg, "-o", "yaml", "example.com/img.jpg")
	if err == nil {
		t.Fatal("expected an error for an unknown output format")
	}
	if !stderrors.Is(err, &apperrors.AppError{Type: apperrors.ErrorTypeConfiguration}) {
		t.Errorf("expected configuration error, got %v", err)
	}
}

func TestRunRequiresImageURL(t *testing.T) {
	cfg := writeConfigFile(t, "THUMBOR_BASE_URL=https://img.example.com\n")

	_, err := execute(t, "-e", cfg)
	if err == nil {
		t.Fatal("expected an argument error without an image URL")
	}
}
