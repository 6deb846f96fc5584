package normalize

import (
	"strings"
	"unicode/utf8"

	"github.com/baditaflorin/go_string_toolkit/internal/pool"
)

// Control-sequence grammar: ESC '[' <parameter bytes>* <intermediate bytes>*
// <final byte>. The byte classes below are the ECMA-48 CSI ranges.
const (
	escByte = 0x1b

	paramLo = 0x30
	paramHi = 0x3f

	intermediateLo = 0x20
	intermediateHi = 0x2f

	finalLo = 0x40
	finalHi = 0x7e
)

// byteBuffers holds reusable output buffers for the byte-wise scan.
var byteBuffers = pool.NewBufferPool(4096)

// StripEscapes removes every substring matching the control-sequence grammar.
// The scan is an explicit state machine rather than a regex, so the accepted
// grammar is exactly the documented one, byte for byte. Text that only looks
// like a sequence (ESC without a valid tail) passes through unchanged.
func StripEscapes(s string) string {
	if !strings.ContainsRune(s, escByte) {
		return s
	}

	buffer := byteBuffers.Get()
	defer byteBuffers.Put(buffer)
	if cap(*buffer) < len(s) {
		*buffer = make([]byte, 0, len(s))
	}
	*buffer = (*buffer)[:0]

	for i := 0; i < len(s); {
		if s[i] == escByte {
			if end, ok := scanSequence(s, i); ok {
				i = end
				continue
			}
		}
		*buffer = append(*buffer, s[i])
		i++
	}
	return string(*buffer)
}

// scanSequence matches one control sequence starting at the ESC byte at i and
// returns the index just past its final byte.
func scanSequence(s string, i int) (int, bool) {
	j := i + 1
	if j >= len(s) || s[j] != '[' {
		return 0, false
	}
	j++
	for j < len(s) && s[j] >= paramLo && s[j] <= paramHi {
		j++
	}
	for j < len(s) && s[j] >= intermediateLo && s[j] <= intermediateHi {
		j++
	}
	if j < len(s) && s[j] >= finalLo && s[j] <= finalHi {
		return j + 1, true
	}
	return 0, false
}

// VisualLength is the rune count of s once control sequences are removed:
// escapes are zero-width, everything else counts as one code point.
func VisualLength(s string) int {
	return utf8.RuneCountInString(StripEscapes(s))
}
