package textutil

import "testing"

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Samsung", "Samsung"},
		{" padded ", "padded"},
		{"a/b\\c:d", "a-b-c-d"},
		{`what?"quotes"<angle>|pipe`, "whatquotesanglepipe"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := SanitizeFileName(tc.input); got != tc.want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestTidyLabel(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"vol up", "Vol Up"},
		{"power", "Power"},
		{"HDMI", "HDMI"},
		{"Vol Up", "Vol Up"},
		{"  power  ", "Power"},
		{"", ""},
		{"N/A", "N/A"},
	}
	for _, tc := range cases {
		if got := TidyLabel(tc.input); got != tc.want {
			t.Errorf("TidyLabel(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
