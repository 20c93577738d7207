package capture

import (
	"fmt"
	"regexp"
	"strconv"
)

// SentinelLabel substitutes for triples that have no positional label.
const SentinelLabel = "N/A"

var (
	labelPattern  = regexp.MustCompile(`,\s*(.*?)\s*=`)
	triplePattern = regexp.MustCompile(`\b([0-9A-Fa-f]{1,2})\s+([0-9A-Fa-f]{1,2})\s+([0-9A-Fa-f]{1,2})\b`)
	brandPattern  = regexp.MustCompile(`Brand=\s*(\S+)`)
	modelPattern  = regexp.MustCompile(`Model=\s*(\S+)`)
)

// Entry is one extracted (label, triple) candidate. Triple bytes are
// already validated to the byte range and zero-padded on render.
type Entry struct {
	Label  string
	Triple [3]byte
}

// Hex24 renders the triple as 6 uppercase hex digits, two per byte.
func (e Entry) Hex24() string {
	return fmt.Sprintf("%02X%02X%02X", e.Triple[0], e.Triple[1], e.Triple[2])
}

// Labels scans text for substrings between a comma and the next equals
// sign, in order of appearance. The scan is independent of the triple
// scan: it ties labels to triples by position only.
func Labels(text string) []string {
	matches := labelPattern.FindAllStringSubmatch(text, -1)
	labels := make([]string, 0, len(matches))
	for _, m := range matches {
		labels = append(labels, m[1])
	}
	return labels
}

// Triples scans text for runs of three whitespace-separated 1-2 digit hex
// tokens. Tokens outside the byte range are filtered rather than reported;
// the 1-2 digit pattern cannot actually produce one, but the guard is kept
// because the pattern is the only thing standing between free text and the
// fixed-width transform downstream.
func Triples(text string) [][3]byte {
	matches := triplePattern.FindAllStringSubmatch(text, -1)
	triples := make([][3]byte, 0, len(matches))
	for _, m := range matches {
		triple, ok := parseTriple(m[1], m[2], m[3])
		if !ok {
			continue
		}
		triples = append(triples, triple)
	}
	return triples
}

func parseTriple(tokens ...string) ([3]byte, bool) {
	var triple [3]byte
	for i, token := range tokens {
		value, err := strconv.ParseUint(token, 16, 64)
		if err != nil || value > 0xFF {
			return [3]byte{}, false
		}
		triple[i] = byte(value)
	}
	return triple, true
}

// Entries runs both scans and pairs the i-th triple with the i-th label.
// Triples beyond the last label get SentinelLabel. Rescanning the same
// text yields an equal slice; no scan state is retained.
func Entries(text string) []Entry {
	labels := Labels(text)
	triples := Triples(text)

	entries := make([]Entry, 0, len(triples))
	for i, triple := range triples {
		label := SentinelLabel
		if i < len(labels) {
			label = labels[i]
		}
		entries = append(entries, Entry{Label: label, Triple: triple})
	}
	return entries
}

// BrandModel extracts "Brand=" and "Model=" values from text, falling back
// to the irplus placeholder identifiers when absent.
func BrandModel(text string) (brand, model string) {
	brand, model = "Brand", "ItemX"
	if m := brandPattern.FindStringSubmatch(text); m != nil {
		brand = m[1]
	}
	if m := modelPattern.FindStringSubmatch(text); m != nil {
		model = m[1]
	}
	return brand, model
}
