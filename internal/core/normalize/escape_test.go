package normalize

import (
	"sync"
	"testing"
)

func TestStripEscapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no escapes",
			input: "plain text",
			want:  "plain text",
		},
		{
			name:  "color round trip",
			input: "\x1b[31mRed\x1b[0m",
			want:  "Red",
		},
		{
			name:  "multi-parameter sequence",
			input: "\x1b[1;32;44mloud\x1b[0m",
			want:  "loud",
		},
		{
			name:  "cursor movement",
			input: "\x1b[2Aup\x1b[10Cright",
			want:  "upright",
		},
		{
			name:  "intermediate bytes",
			input: "\x1b[0 qblock",
			want:  "block",
		},
		{
			name:  "bare escape passes through",
			input: "a\x1bb",
			want:  "a\x1bb",
		},
		{
			name:  "unterminated sequence passes through",
			input: "a\x1b[31",
			want:  "a\x1b[31",
		},
		{
			name:  "escape without bracket passes through",
			input: "a\x1b]0;title\x07b",
			want:  "a\x1b]0;title\x07b",
		},
		{
			name:  "case and spacing preserved",
			input: "  \x1b[7mKeep Me  \x1b[0m",
			want:  "  Keep Me  ",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripEscapes(tc.input); got != tc.want {
				t.Errorf("StripEscapes(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestStripEscapesConcurrent(t *testing.T) {
	const (
		workers    = 8
		iterations = 200
	)
	input := "\x1b[31mRed\x1b[0m and \x1b[1;32mGreen\x1b[0m"
	want := "Red and Green"

	// Concurrent callers share the scanner's buffer pool; results must stay
	// independent.
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				if got := StripEscapes(input); got != want {
					t.Errorf("StripEscapes = %q, want %q", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestVisualLength(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abc", 3},
		{"\x1b[31mRed\x1b[0m", 3},
		{"héllo", 5},
		{"\x1b[1;32;44m\x1b[0m", 0},
		{"a b", 3},
	}
	for _, tc := range tests {
		if got := VisualLength(tc.input); got != tc.want {
			t.Errorf("VisualLength(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}
