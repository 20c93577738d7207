package converter

import (
	"fmt"
	"os"
	"strings"

	"irweave/internal/capture"
	"irweave/internal/irplus"
	"irweave/internal/naming"
	"irweave/internal/textio"
	"irweave/internal/textutil"
	"irweave/internal/transcode"
)

// Options adjusts a conversion run.
type Options struct {
	// Brand and Model override values scanned from the capture text.
	Brand string
	Model string
	// TidyLabels title-cases all-lowercase key labels.
	TidyLabels bool
}

// Entry is one transcoded key, ready for display or rendering.
type Entry struct {
	Label string
	Hex24 string
	Code  transcode.Code
}

// Result carries everything a conversion produced.
type Result struct {
	Brand    string
	Model    string
	Entries  []Entry
	Document string
	Warnings []string
}

// Run converts decoded capture text into an irplus document. It never
// fails: a capture with no recognizable codes yields a header-only
// document with zero entries.
func Run(text string, opts Options) Result {
	brand, model := capture.BrandModel(text)
	if strings.TrimSpace(opts.Brand) != "" {
		brand = strings.TrimSpace(opts.Brand)
	}
	if strings.TrimSpace(opts.Model) != "" {
		model = strings.TrimSpace(opts.Model)
	}

	raw := capture.Entries(text)
	entries := make([]Entry, 0, len(raw))
	lines := make([]string, 0, len(raw))
	for _, e := range raw {
		label := e.Label
		if opts.TidyLabels {
			label = textutil.TidyLabel(label)
		}
		code := transcode.Transform(e.Triple)
		entries = append(entries, Entry{Label: label, Hex24: e.Hex24(), Code: code})
		lines = append(lines, fmt.Sprintf("%s\t%s\t%s\t%s", label, e.Hex24(), code.Hex(), code.String()))
	}

	document, warnings := irplus.RenderLines(brand, model, lines)
	return Result{
		Brand:    brand,
		Model:    model,
		Entries:  entries,
		Document: document,
		Warnings: warnings,
	}
}

// RunFile decodes and converts a capture file.
func RunFile(path string, opts Options) (Result, error) {
	text, err := textio.ReadFile(path)
	if err != nil {
		return Result{}, err
	}
	return Run(text, opts), nil
}

// Write renders the result to the first free "{brand}-{model}.irplus"
// path under dir and returns that path.
func Write(dir string, result Result) (string, error) {
	path, err := naming.OutputPath(dir, result.Brand, result.Model)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(result.Document), 0o644); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}
	return path, nil
}
