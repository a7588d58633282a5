package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"EditorialGate/internal/domain"
)

// Writer persists run artifacts for the drafting step and for diagnostics.
type Writer struct {
	dir string
}

// NewWriter targets the output directory; "" means the working directory.
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "."
	}
	return &Writer{dir: dir}
}

// WriteLinks stores the validated record list consumed by the drafter.
func (w *Writer) WriteLinks(links []domain.ValidatedLink) error {
	return w.writeJSON("links.json", links)
}

// WriteSummary stores the terminal verdict: validated records on pass,
// per-URL rejection reasons on fail.
func (w *Writer) WriteSummary(result domain.GateResult) error {
	if result.Passed {
		return w.writeJSON("run-summary.json", map[string]any{
			"stage_pass": true,
			"urls":       result.Validated,
		})
	}
	return w.writeJSON("run-summary.json", map[string]any{
		"stage_pass": false,
		"errors":     result.Rejected,
	})
}

// WriteEditorial stores the drafted editorial text.
func (w *Writer) WriteEditorial(text string) error {
	path := filepath.Join(w.dir, "editorial.txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write editorial.txt: %w", err)
	}
	return nil
}

func (w *Writer) writeJSON(name string, v any) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(w.dir, name), payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
