package stringtoolkit

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalizeSurface(t *testing.T) {
	if got := Normalize("  Crème  Brûlée  "); got != "creme brulee" {
		t.Errorf("Normalize = %q", got)
	}
	if got := NormalizeStrict("a-_-b"); got != "ab" {
		t.Errorf("NormalizeStrict = %q", got)
	}
	if got := NormalizeWith("\x1b[31mRed Alert!\x1b[0m", true, true); got != "redalert" {
		t.Errorf("NormalizeWith = %q", got)
	}
	if got := StripEscapes("\x1b[31mRed\x1b[0m"); got != "Red" {
		t.Errorf("StripEscapes = %q", got)
	}
	if got := VisualLength("\x1b[31mRed\x1b[0m"); got != 3 {
		t.Errorf("VisualLength = %d", got)
	}
}

func TestValidateSurface(t *testing.T) {
	if Validate(NoText()) {
		t.Error("Validate(missing) = true")
	}
	if Validate(NewText("")) {
		t.Error("Validate(empty) = true")
	}
	if Validate(NewText("   ")) {
		t.Error("Validate(blank) = true")
	}
	if !Validate(NewText("x")) {
		t.Error("Validate(meaningful) = false")
	}
	if !ValidateAgainst(NewText("red"), []string{"red", "blue"}) {
		t.Error("ValidateAgainst(member) = false")
	}
	if ValidateAgainst(NewText("RED"), []string{"red", "blue"}) {
		t.Error("ValidateAgainst is case-insensitive, want case-sensitive")
	}
}

func TestChecksSurface(t *testing.T) {
	if !IsPalindrome(NewText("A man a plan a canal Panama"), true) {
		t.Error("IsPalindrome(folded) = false")
	}
	if !IsAnagram(NewText("dormitory"), NewText("dirty room")) {
		t.Error("IsAnagram = false")
	}
	if IsAnagram(NewText("same"), NewText("same")) {
		t.Error("identical strings reported as anagrams")
	}
}

func TestArrayPolicies(t *testing.T) {
	values := []Text{NewText(" Über "), NoText(), NewText("  ")}

	if got, want := NormalizeBalanced(values), []string{"uber"}; !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeBalanced = %q, want %q", got, want)
	}
	if got, want := NormalizeSoft(values, false), []string{"Über"}; !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeSoft = %q, want %q", got, want)
	}
	if got, want := NormalizeStrictAll(values), []string{"uber"}; !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeStrictAll = %q, want %q", got, want)
	}

	sorted := SortNormalized([]Text{NewText("Zèbre"), NewText("apple"), NoText()})
	if got, want := sorted, []string{"apple", "Zèbre"}; !reflect.DeepEqual(got, want) {
		t.Errorf("SortNormalized = %q, want %q", got, want)
	}
}

func TestRenderTableSurface(t *testing.T) {
	if got := RenderTable(nil); got != NoDataMessage {
		t.Errorf("RenderTable(nil) = %q", got)
	}

	records := []Record{
		{{Key: "Name", Value: "Zaka"}, {Key: "Age", Value: 50}, {Key: "Country", Value: "Spain"}},
		{{Key: "Name", Value: "Someone"}, {Key: "Age", Value: 25}, {Key: "Country", Value: "Poland"}},
	}
	got := RenderTable(records)
	if strings.HasPrefix(got, "Error:") {
		t.Fatalf("RenderTable failed: %q", got)
	}
	for _, fragment := range []string{"│ Name", "│ Age", "│ Country", "│ Zaka", "│ Someone", "┌", "┘"} {
		if !strings.Contains(got, fragment) {
			t.Errorf("RenderTable output missing %q:\n%s", fragment, got)
		}
	}

	bad := []Record{
		{{Key: "Key", Value: "a"}, {Key: "Key2", Value: "b"}},
		{{Key: "Key", Value: "c"}, {Key: "Key3", Value: "d"}},
	}
	if got := RenderTable(bad); !strings.HasPrefix(got, "Error: Unable to represent data.") {
		t.Errorf("RenderTable(bad) = %q, want consistency error", got)
	}
}
