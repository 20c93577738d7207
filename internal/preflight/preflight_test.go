package preflight

import (
	"os"
	"path/filepath"
	"testing"

	"irweave/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckAllCoversConfiguredDirectories(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	results := CheckAll(cfg)
	if len(results) != 3 {
		t.Fatalf("expected 3 checks, got %d", len(results))
	}
	if !AllPassed(results) {
		t.Fatalf("expected all checks to pass: %+v", results)
	}

	if err := os.RemoveAll(cfg.Paths.InboxDir); err != nil {
		t.Fatal(err)
	}
	if AllPassed(CheckAll(cfg)) {
		t.Fatal("expected failure after removing inbox")
	}
}

func TestCheckAllNilConfig(t *testing.T) {
	if results := CheckAll(nil); results != nil {
		t.Fatalf("expected nil results, got %+v", results)
	}
}
