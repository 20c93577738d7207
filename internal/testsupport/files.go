package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"irweave/internal/config"
)

// SampleCapture is a minimal capture body with a brand line and one key.
const SampleCapture = "Brand=Samsung Model=BN59\n1, Power = 04 7B 0A\n"

// WriteCapture writes a capture file into the config inbox and returns its path.
func WriteCapture(t testing.TB, cfg *config.Config, name, content string) string {
	t.Helper()

	path := filepath.Join(cfg.Paths.InboxDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
