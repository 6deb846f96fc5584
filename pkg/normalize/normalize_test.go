package normalize

import (
	"reflect"
	"testing"
)

func newQuiet(t *testing.T) *Normalizer {
	t.Helper()
	n, err := New(WithQuietLogging())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return n
}

func TestNormalizerFacade(t *testing.T) {
	n := newQuiet(t)

	if got := n.Normalize("  Crème  Brûlée  "); got != "creme brulee" {
		t.Errorf("Normalize = %q", got)
	}
	if got := n.NormalizeStrict("Hello, World!"); got != "helloworld" {
		t.Errorf("NormalizeStrict = %q", got)
	}
	if got := n.NormalizeWith("\x1b[31mRed\x1b[0m", false, true); got != "red" {
		t.Errorf("NormalizeWith = %q", got)
	}
	if got := n.StripEscapes("\x1b[31mRed\x1b[0m"); got != "Red" {
		t.Errorf("StripEscapes = %q", got)
	}
	if got := n.VisualLength("\x1b[1;32mab\x1b[0m"); got != 2 {
		t.Errorf("VisualLength = %d", got)
	}
	if !n.Validate(NewText("x")) || n.Validate(NoText()) {
		t.Error("Validate gate broken")
	}
	if !n.IsPalindrome(NewText("racecar"), true) {
		t.Error("IsPalindrome = false")
	}
	if !n.IsAnagram(NewText("listen"), NewText("silent")) {
		t.Error("IsAnagram = false")
	}

	values := []Text{NewText(" a "), NoText(), NewText("B ")}
	if got, want := n.NormalizeAll(values, Soft, true), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeAll(Soft) = %q, want %q", got, want)
	}
	if got, want := n.SortNormalized(values), []string{" a ", "B "}; !reflect.DeepEqual(got, want) {
		t.Errorf("SortNormalized = %q, want %q", got, want)
	}
}

func TestNormalizerWarmUp(t *testing.T) {
	n, err := New(WithQuietLogging(), WithWarmUp(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Warm-up must not change observable behavior.
	if got := n.Normalize("Árvíz"); got != "arviz" {
		t.Errorf("Normalize after warmup = %q", got)
	}
}
