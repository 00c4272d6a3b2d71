package env

import "testing"

type locale struct {
	Tag string
}

type colorScheme struct {
	Dark bool
}

func TestLookupEmpty(t *testing.T) {
	root := New()
	if _, ok := Lookup[locale](root); ok {
		t.Error("expected no locale in empty environment")
	}
}

func TestWithAndLookup(t *testing.T) {
	e := New().With(locale{Tag: "en-US"}).With(colorScheme{Dark: true})

	loc, ok := Lookup[locale](e)
	if !ok || loc.Tag != "en-US" {
		t.Errorf("Lookup[locale] = %v, %v; want en-US, true", loc, ok)
	}
	scheme, ok := Lookup[colorScheme](e)
	if !ok || !scheme.Dark {
		t.Errorf("Lookup[colorScheme] = %v, %v; want dark, true", scheme, ok)
	}
}

func TestWithShadowsParent(t *testing.T) {
	parent := New().With(locale{Tag: "en-US"})
	child := parent.With(locale{Tag: "fr-FR"})

	loc, _ := Lookup[locale](child)
	if loc.Tag != "fr-FR" {
		t.Errorf("child locale = %q, want fr-FR", loc.Tag)
	}
	// Parent is unchanged.
	loc, _ = Lookup[locale](parent)
	if loc.Tag != "en-US" {
		t.Errorf("parent locale = %q, want en-US", loc.Tag)
	}
}

func TestWithNilIsNoop(t *testing.T) {
	e := New().With(locale{Tag: "en-US"})
	if e.With(nil) != e {
		t.Error("With(nil) should return the receiver")
	}
}

func TestLookupOr(t *testing.T) {
	e := New()
	loc := LookupOr(e, locale{Tag: "en-US"})
	if loc.Tag != "en-US" {
		t.Errorf("LookupOr fallback = %q, want en-US", loc.Tag)
	}

	e = e.With(locale{Tag: "de-DE"})
	loc = LookupOr(e, locale{Tag: "en-US"})
	if loc.Tag != "de-DE" {
		t.Errorf("LookupOr present = %q, want de-DE", loc.Tag)
	}
}

func TestHas(t *testing.T) {
	e := New().With(colorScheme{Dark: false})
	if !Has[colorScheme](e) {
		t.Error("expected colorScheme capability")
	}
	if Has[locale](e) {
		t.Error("did not expect locale capability")
	}
}

func TestCapabilitiesShadowing(t *testing.T) {
	e := New().With(locale{Tag: "en-US"}).With(locale{Tag: "ja-JP"})
	caps := e.Capabilities()
	if len(caps) != 1 {
		t.Fatalf("expected 1 effective capability, got %d", len(caps))
	}
	for _, v := range caps {
		if v.(locale).Tag != "ja-JP" {
			t.Errorf("effective locale = %v, want ja-JP", v)
		}
	}
}
