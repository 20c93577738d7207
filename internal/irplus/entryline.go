package irplus

import (
	"fmt"
	"strings"
)

// entryLineFields is the minimum column count of a processed capture line:
// label, 24-bit code, 32-bit code, packed halves.
const entryLineFields = 4

// ParseEntryLine decodes one tab-separated processed line into a Button.
// The label is the first column verbatim (it may contain spaces); the
// button body is the fourth column. Lines with fewer columns are rejected
// so callers can skip them with a warning instead of emitting a broken
// button.
func ParseEntryLine(line string) (Button, error) {
	parts := strings.Split(strings.TrimSpace(line), "\t")
	if len(parts) < entryLineFields {
		return Button{}, fmt.Errorf("entry line has %d columns, need %d: %q", len(parts), entryLineFields, strings.TrimSpace(line))
	}
	return Button{Label: parts[0], Code: parts[3]}, nil
}

// RenderLines assembles a document from processed lines, skipping
// malformed ones. Returned warnings describe each skipped line; they are
// advisory, never fatal.
func RenderLines(brand, model string, lines []string) (doc string, warnings []string) {
	buttons := make([]Button, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		button, err := ParseEntryLine(line)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping line due to insufficient columns: %s", strings.TrimSpace(line)))
			continue
		}
		buttons = append(buttons, button)
	}
	return Render(brand, model, buttons), warnings
}
