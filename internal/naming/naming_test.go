package naming

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBaseName(t *testing.T) {
	if got := BaseName("Samsung", "BN59"); got != "Samsung-BN59" {
		t.Fatalf("got %q", got)
	}
	if got := BaseName("A/B", "C:D"); got != "A-B-C-D" {
		t.Fatalf("sanitized = %q", got)
	}
	if got := BaseName("", ""); got != "Brand-ItemX" {
		t.Fatalf("fallback = %q", got)
	}
}

func TestOutputPathFirstFree(t *testing.T) {
	dir := t.TempDir()

	path, err := OutputPath(dir, "Samsung", "BN59")
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(dir, "Samsung-BN59.irplus") {
		t.Fatalf("got %q", path)
	}
}

func TestOutputPathIncrementsOnCollision(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"Samsung-BN59.irplus", "Samsung-BN59_1.irplus"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	path, err := OutputPath(dir, "Samsung", "BN59")
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(dir, "Samsung-BN59_2.irplus") {
		t.Fatalf("got %q", path)
	}
}
