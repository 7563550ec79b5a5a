package procedures

import (
	"testing"

	"github.com/goliatone/go-intake/pkg/catalog"
)

func TestSearch_PrefixMatchesRankFirst(t *testing.T) {
	set := catalog.New(
		catalog.Option{Value: "A1", Label: "Cardiac MRI"},
		catalog.Option{Value: "M2", Label: "MRI Head"},
	)

	got := Search(set, "mri", 0, DefaultOptions())
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %#v", got)
	}
	if got[0].Value != "M2" {
		t.Fatalf("expected prefix match first, got %#v", got)
	}
	if got[1].Value != "A1" {
		t.Fatalf("expected substring match second, got %#v", got)
	}
}

func TestSearch_NoMatchesReturnsNil(t *testing.T) {
	if got := Search(testCatalog(), "cardiology", 0, DefaultOptions()); got != nil {
		t.Fatalf("expected nil for no matches, got %#v", got)
	}
}

func TestSearch_NegativeLimitReturnsNil(t *testing.T) {
	if got := Search(testCatalog(), "mri", -1, DefaultOptions()); got != nil {
		t.Fatalf("expected nil for negative limit, got %#v", got)
	}
}

func TestSearch_EmptyQueryRespectsLimit(t *testing.T) {
	got := Search(testCatalog(), "", 2, DefaultOptions())
	if len(got) != 2 {
		t.Fatalf("expected 2 options, got %#v", got)
	}
	if got[0].Value != "A876" || got[1].Value != "B901" {
		t.Fatalf("expected catalog order, got %#v", got)
	}
}
