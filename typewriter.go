package stringtoolkit

import (
	"io"
	"time"
)

// TypeOut writes text to w one rune at a time, sleeping delay between
// writes. It is a demo effect, not a correctness-critical operation: the
// only way it stops early is a write error, which is returned as-is.
func TypeOut(w io.Writer, text string, delay time.Duration) error {
	for _, r := range text {
		if _, err := io.WriteString(w, string(r)); err != nil {
			return err
		}
		if delay > 0 {
			time.Sleep(delay)
		}
	}
	return nil
}
