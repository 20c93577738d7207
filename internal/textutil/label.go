package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var labelCaser = cases.Title(language.English)

// TidyLabel trims a key label and title-cases it when the capture supplied
// it entirely in lower case ("vol up" becomes "Vol Up"). Mixed-case labels
// pass through untouched so deliberate spellings like "HDMI" survive.
func TidyLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return label
	}
	if label == strings.ToLower(label) {
		return labelCaser.String(label)
	}
	return label
}
