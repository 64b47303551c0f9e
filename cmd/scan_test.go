package cmd

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/evtools/evtchart/internal/models"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns what
// it printed alongside fn's error.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	runErr := fn()

	w.Close()
	os.Stdout = old
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(data), runErr
}

func writeExthostLog(t *testing.T, root, day string) {
	t.Helper()
	dir := filepath.Join(root, day, "extension-host")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "[2021-05-01 19:01:27.310] [exthost] [info] ExtensionService#loadCommonJSModule\n" +
		"[2021-05-01 19:40:00.000] [exthost] [info] eager activation\n"
	if err := os.WriteFile(filepath.Join(dir, "exthost.log"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanMissingRoot(t *testing.T) {
	initConfig()

	err := scan(scanCmd, []string{filepath.Join(t.TempDir(), "no-such-root")})
	if err == nil {
		t.Fatal("expected error for missing root")
	}
	var accessErr *models.FileAccessError
	if !errors.As(err, &accessErr) {
		t.Fatalf("expected FileAccessError, got %T: %v", err, err)
	}
}

func TestScanRendersPerDirectory(t *testing.T) {
	initConfig()

	root := t.TempDir()
	writeExthostLog(t, root, "20210501T190000")
	// A daily directory without exthost.log is skipped, not fatal.
	if err := os.MkdirAll(filepath.Join(root, "20210502T190000", "extension-host"), 0o755); err != nil {
		t.Fatal(err)
	}

	outDir := t.TempDir()
	if err := scanCmd.Flags().Set("out-dir", outDir); err != nil {
		t.Fatal(err)
	}
	defer scanCmd.Flags().Set("out-dir", ".")

	out, err := captureStdout(t, func() error {
		return scan(scanCmd, []string{root})
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rendered := filepath.Join(outDir, "20210501T190000-line.html")
	if _, err := os.Stat(rendered); err != nil {
		t.Errorf("expected rendered chart at %s: %v", rendered, err)
	}
	skipped := filepath.Join(outDir, "20210502T190000-line.html")
	if _, err := os.Stat(skipped); err == nil {
		t.Errorf("expected no chart for directory without exthost.log")
	}
	if !strings.Contains(out, "Rendered 1 charts") {
		t.Errorf("expected summary reporting 1 chart, got %q", out)
	}
}
