package utils

import (
	"strings"
	"testing"
)

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"Hello World":          "hello-world",
		"  Café déjà vu  ":     "cafe-deja-vu",
		"Привет мир":           "privet-mir",
		"--Already--slugged--": "already-slugged",
		"!!!":                  "",
		"Straße für Łódź":      "strasse-fur-lodz",
	}

	for input, expected := range cases {
		if got := GenerateSlug(input); got != expected {
			t.Errorf("GenerateSlug(%q) = %q, want %q", input, got, expected)
		}
	}
}

func TestGenerateSlugCapsLengthAtWordBoundary(t *testing.T) {
	slug := GenerateSlug(strings.Repeat("section ", 30))
	if len(slug) > MaxSlugLength {
		t.Fatalf("slug too long: %d", len(slug))
	}
	if strings.HasSuffix(slug, "-") || strings.HasSuffix(slug, "sect") {
		t.Fatalf("slug must end on a whole word, got %q", slug)
	}
}
