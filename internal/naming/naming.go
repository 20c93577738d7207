// Package naming picks collision-free output paths for rendered documents.
package naming

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"irweave/internal/irplus"
	"irweave/internal/textutil"
)

// BaseName returns the sanitized "{brand}-{model}" document stem.
func BaseName(brand, model string) string {
	brand = textutil.SanitizeFileName(brand)
	model = textutil.SanitizeFileName(model)
	if brand == "" {
		brand = "Brand"
	}
	if model == "" {
		model = "ItemX"
	}
	return brand + "-" + model
}

// OutputPath returns the first free path for the document in dir:
// "{brand}-{model}.irplus", then "{brand}-{model}_1.irplus" and so on.
// Callers are assumed to be the only writer; the probe is a plain
// check-and-increment, not a lock.
func OutputPath(dir, brand, model string) (string, error) {
	base := BaseName(brand, model)

	candidate := filepath.Join(dir, base+irplus.FileExtension)
	for n := 1; ; n++ {
		_, err := os.Stat(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("probe output path %q: %w", candidate, err)
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, n, irplus.FileExtension))
	}
}
