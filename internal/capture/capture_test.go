package capture

import (
	"reflect"
	"testing"
)

const sampleCapture = `Brand=Samsung Model=BN59
1, Power = 04 7B 0A
2, Vol Up = 04 7B 07
3, Vol Down = 04 7B 0B
`

func TestLabelsInOrder(t *testing.T) {
	got := Labels(sampleCapture)
	want := []string{"Power", "Vol Up", "Vol Down"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Labels = %q, want %q", got, want)
	}
}

func TestTriplesInOrder(t *testing.T) {
	got := Triples(sampleCapture)
	want := [][3]byte{
		{0x04, 0x7B, 0x0A},
		{0x04, 0x7B, 0x07},
		{0x04, 0x7B, 0x0B},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Triples = %v, want %v", got, want)
	}
}

func TestTriplesSingleDigitTokens(t *testing.T) {
	got := Triples("codes: 4 7B A end")
	want := [][3]byte{{0x04, 0x7B, 0x0A}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Triples = %v, want %v", got, want)
	}
}

func TestEntriesPairPositionally(t *testing.T) {
	text := "x, Power = stuff\n01 02 03\n0A 0B 0C\n"
	entries := Entries(text)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Label != "Power" {
		t.Fatalf("first label = %q", entries[0].Label)
	}
	if entries[1].Label != SentinelLabel {
		t.Fatalf("second label = %q, want sentinel", entries[1].Label)
	}
	if entries[0].Triple != [3]byte{0x01, 0x02, 0x03} {
		t.Fatalf("first triple = %v", entries[0].Triple)
	}
}

func TestEntriesEmptyInput(t *testing.T) {
	if got := Entries("no codes here at all"); len(got) != 0 {
		t.Fatalf("expected no entries, got %v", got)
	}
	if got := Labels("no commas"); len(got) != 0 {
		t.Fatalf("expected no labels, got %q", got)
	}
}

func TestEntriesRescanDeterministic(t *testing.T) {
	first := Entries(sampleCapture)
	second := Entries(sampleCapture)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("rescanning the same text produced different entries")
	}
}

func TestHex24ZeroPads(t *testing.T) {
	e := Entry{Triple: [3]byte{0x04, 0x7B, 0x0A}}
	if got := e.Hex24(); got != "047B0A" {
		t.Fatalf("Hex24 = %q", got)
	}
}

func TestBrandModel(t *testing.T) {
	brand, model := BrandModel(sampleCapture)
	if brand != "Samsung" || model != "BN59" {
		t.Fatalf("BrandModel = %q %q", brand, model)
	}

	brand, model = BrandModel("nothing useful")
	if brand != "Brand" || model != "ItemX" {
		t.Fatalf("defaults = %q %q", brand, model)
	}
}
