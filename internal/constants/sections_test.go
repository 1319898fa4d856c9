package constants

import "testing"

func TestNormaliseAlign(t *testing.T) {
	cases := map[string]string{
		"":         AlignLeft,
		"CENTER":   AlignCenter,
		" right ":  AlignRight,
		"diagonal": AlignLeft,
	}
	for input, expected := range cases {
		if got := NormaliseAlign(input); got != expected {
			t.Errorf("NormaliseAlign(%q) = %q, want %q", input, got, expected)
		}
	}
}

func TestNormaliseBackgroundRejectsUnknown(t *testing.T) {
	if got := NormaliseBackground("Muted"); got != "muted" {
		t.Fatalf("expected muted, got %q", got)
	}
	if got := NormaliseBackground("plaid"); got != "" {
		t.Fatalf("expected empty background for unknown value, got %q", got)
	}
}

func TestAlignOptionsReturnsCopy(t *testing.T) {
	options := AlignOptions()
	options[0] = "mutated"
	if AlignOptions()[0] != AlignLeft {
		t.Fatalf("expected internal options to be unaffected by caller mutation")
	}
}
