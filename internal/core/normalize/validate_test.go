package normalize

import (
	"reflect"
	"testing"

	"github.com/baditaflorin/go_string_toolkit/internal/core/domain"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		value domain.Text
		want  bool
	}{
		{"missing", domain.NoText(), false},
		{"empty", domain.NewText(""), false},
		{"whitespace only", domain.NewText("   "), false},
		{"meaningful", domain.NewText("x"), true},
		{"meaningful with padding", domain.NewText("  x  "), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Validate(tc.value); got != tc.want {
				t.Errorf("Validate(%v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestValidateAgainst(t *testing.T) {
	allowed := []string{"red", "Green", "blue"}
	tests := []struct {
		name  string
		value domain.Text
		want  bool
	}{
		{"member", domain.NewText("red"), true},
		{"case sensitive member", domain.NewText("Green"), true},
		{"wrong case", domain.NewText("green"), false},
		{"non-member", domain.NewText("yellow"), false},
		{"missing", domain.NoText(), false},
		{"blank", domain.NewText("  "), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidateAgainst(tc.value, allowed); got != tc.want {
				t.Errorf("ValidateAgainst(%v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestIsPalindrome(t *testing.T) {
	tests := []struct {
		name string
		in   string
		fold bool
		want bool
	}{
		{"simple", "racecar", true, true},
		{"case and spaces ignored", "A man a plan a canal Panama", true, true},
		{"punctuation ignored when folding", "Madam, I'm Adam", true, true},
		{"not a palindrome", "hello", true, false},
		{"accent folds to match", "abá", true, true},
		{"accent kept apart without folding", "abá", false, false},
		{"case and spaces still fold without diacritic folding", "Race car", false, true},
		{"spaces removed without folding", "aa bb aa", false, true},
		{"single rune", "x", true, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsPalindrome(domain.NewText(tc.in), tc.fold); got != tc.want {
				t.Errorf("IsPalindrome(%q, fold=%v) = %v, want %v", tc.in, tc.fold, got, tc.want)
			}
		})
	}

	if IsPalindrome(domain.NoText(), true) {
		t.Error("IsPalindrome(missing) = true, want false")
	}
}

func TestIsAnagram(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"classic", "listen", "silent", true},
		{"case insensitive", "Elvis", "Lives", true},
		{"whitespace ignored", "dormitory", "dirty room", true},
		{"identical strings are not anagrams", "listen", "listen", false},
		{"different letters", "hello", "world", false},
		{"different multiplicity", "aab", "abb", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := IsAnagram(domain.NewText(tc.a), domain.NewText(tc.b))
			if got != tc.want {
				t.Errorf("IsAnagram(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}

	if IsAnagram(domain.NoText(), domain.NewText("abc")) {
		t.Error("IsAnagram(missing, present) = true, want false")
	}
}

func TestNormalizeAll(t *testing.T) {
	values := []domain.Text{
		domain.NewText("  Crème Brûlée  "),
		domain.NoText(),
		domain.NewText("   "),
		domain.NewText("\x1b[31mRed-Velvet\x1b[0m"),
	}

	tests := []struct {
		name      string
		policy    domain.Policy
		lowercase bool
		want      []string
	}{
		{
			name:   "balanced folds accents and case",
			policy: domain.Balanced,
			want:   []string{"creme brulee", "\x1b[31mred-velvet\x1b[0m"},
		},
		{
			name:   "soft trims only",
			policy: domain.Soft,
			want:   []string{"Crème Brûlée", "\x1b[31mRed-Velvet\x1b[0m"},
		},
		{
			name:      "soft with lowercase",
			policy:    domain.Soft,
			lowercase: true,
			want:      []string{"crème brûlée", "\x1b[31mred-velvet\x1b[0m"},
		},
		{
			name:   "strict strips everything down",
			policy: domain.Strict,
			want:   []string{"cremebrulee", "redvelvet"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeAll(values, tc.policy, tc.lowercase)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("NormalizeAll(%s) = %q, want %q", tc.policy, got, tc.want)
			}
		})
	}
}

func TestSortNormalized(t *testing.T) {
	values := []domain.Text{
		domain.NewText("Zèbre"),
		domain.NoText(),
		domain.NewText("  apple  "),
		domain.NewText("Éclair"),
		domain.NewText(" "),
	}
	want := []string{"  apple  ", "Éclair", "Zèbre"}
	if got := SortNormalized(values); !reflect.DeepEqual(got, want) {
		t.Errorf("SortNormalized = %q, want %q", got, want)
	}
}
