package converter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCapture = `Brand=Samsung Model=BN59
1, Power = 04 7B 0A
2, Vol Up = 04 7B 07
3 0A 0B 0C
`

func TestRunEndToEnd(t *testing.T) {
	result := Run(sampleCapture, Options{})

	if result.Brand != "Samsung" || result.Model != "BN59" {
		t.Fatalf("brand/model = %q %q", result.Brand, result.Model)
	}
	if len(result.Entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(result.Entries))
	}
	if result.Entries[0].Label != "Power" || result.Entries[0].Code.String() != "0x20DE 0x50AF" {
		t.Fatalf("first entry = %+v", result.Entries[0])
	}
	if result.Entries[2].Label != "N/A" {
		t.Fatalf("unlabeled entry = %+v", result.Entries[2])
	}
	if !strings.Contains(result.Document, `<button label="Power" labelSize="20.0" span="4">0x20DE 0x50AF</button>`) {
		t.Fatalf("document missing power button:\n%s", result.Document)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("warnings = %q", result.Warnings)
	}
}

func TestRunOverrides(t *testing.T) {
	result := Run(sampleCapture, Options{Brand: "LG", Model: "MR21"})
	if result.Brand != "LG" || result.Model != "MR21" {
		t.Fatalf("overrides ignored: %q %q", result.Brand, result.Model)
	}
}

func TestRunTidyLabels(t *testing.T) {
	result := Run("x, vol up = 01 02 03\n", Options{TidyLabels: true})
	if len(result.Entries) != 1 || result.Entries[0].Label != "Vol Up" {
		t.Fatalf("entries = %+v", result.Entries)
	}
}

func TestRunEmptyCapture(t *testing.T) {
	result := Run("nothing to see", Options{})
	if len(result.Entries) != 0 {
		t.Fatalf("entries = %+v", result.Entries)
	}
	if result.Brand != "Brand" || result.Model != "ItemX" {
		t.Fatalf("defaults = %q %q", result.Brand, result.Model)
	}
	if !strings.Contains(result.Document, "<irplus>") || !strings.Contains(result.Document, "</irplus>") {
		t.Fatalf("header-only document malformed:\n%s", result.Document)
	}
}

func TestRunFileAndWrite(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "capture.txt")
	if err := os.WriteFile(source, []byte(sampleCapture), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := RunFile(source, Options{})
	if err != nil {
		t.Fatal(err)
	}

	outDir := filepath.Join(dir, "out")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		t.Fatal(err)
	}
	path, err := Write(outDir, result)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "Samsung-BN59.irplus" {
		t.Fatalf("output path = %q", path)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(written) != result.Document {
		t.Fatal("written document differs from rendered document")
	}

	// A second write of the same result must not clobber the first.
	second, err := Write(outDir, result)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(second) != "Samsung-BN59_1.irplus" {
		t.Fatalf("second output path = %q", second)
	}
}
