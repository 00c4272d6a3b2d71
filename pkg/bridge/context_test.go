package bridge

import (
	"testing"

	"github.com/go-drift/bridge/pkg/env"
)

func TestContextCloneSharesEnvironment(t *testing.T) {
	type theme struct{ dark bool }

	root := NewContext(env.New().With(theme{dark: true}))
	clone := CloneContext(root)

	if root == clone {
		t.Fatal("clone must be a distinct handle")
	}
	if ContextEnv(root) != ContextEnv(clone) {
		t.Error("clone should share the root's environment")
	}
	if got, ok := env.Lookup[theme](ContextEnv(clone)); !ok || !got.dark {
		t.Error("capability not visible through the clone")
	}

	DropContext(root)
	DropContext(clone)
}

func TestContextRefcount(t *testing.T) {
	root := NewContext(nil)
	if got := ContextRefs(root); got != 1 {
		t.Fatalf("fresh context refs = %d, want 1", got)
	}

	clones := make([]Handle, 3)
	for i := range clones {
		clones[i] = CloneContext(root)
	}
	if got := ContextRefs(root); got != 4 {
		t.Fatalf("refs after 3 clones = %d, want 4", got)
	}

	// The environment survives until the last handle goes, whichever order
	// the drops arrive in.
	DropContext(root)
	DropContext(clones[1])
	if ContextEnv(clones[0]) == nil {
		t.Fatal("environment released while handles remain")
	}
	if got := ContextRefs(clones[0]); got != 2 {
		t.Errorf("refs = %d, want 2", got)
	}
	DropContext(clones[0])
	DropContext(clones[2])
}

func TestDeriveContextIsIndependent(t *testing.T) {
	type locale struct{ tag string }

	root := NewContext(nil)
	derived := DeriveContext(root, locale{tag: "de-DE"})

	if got := ContextRefs(derived); got != 1 {
		t.Errorf("derived refs = %d, want 1", got)
	}
	if _, ok := env.Lookup[locale](ContextEnv(root)); ok {
		t.Error("derivation mutated the parent environment")
	}
	if got, ok := env.Lookup[locale](ContextEnv(derived)); !ok || got.tag != "de-DE" {
		t.Error("derived environment missing its capability")
	}

	// Dropping the parent does not tear down the derived tree.
	DropContext(root)
	if ContextEnv(derived) == nil {
		t.Error("derived environment released with the parent")
	}
	DropContext(derived)
}

func TestDeriveShadowsParentCapability(t *testing.T) {
	type locale struct{ tag string }

	root := NewContext(env.New().With(locale{tag: "en-US"}))
	derived := DeriveContext(root, locale{tag: "ja-JP"})

	if got, _ := env.Lookup[locale](ContextEnv(derived)); got.tag != "ja-JP" {
		t.Errorf("derived tag = %q, want ja-JP", got.tag)
	}
	if got, _ := env.Lookup[locale](ContextEnv(root)); got.tag != "en-US" {
		t.Errorf("root tag = %q, want en-US", got.tag)
	}

	DropContext(derived)
	DropContext(root)
}

func TestContextDoubleDropIsMisuse(t *testing.T) {
	captured := quietMisuse(t)

	h := NewContext(nil)
	DropContext(h)
	DropContext(h)
	if len(*captured) != 1 {
		t.Errorf("expected 1 reported misuse, got %d", len(*captured))
	}
}
