package stringtoolkit

import (
	"bytes"
	"errors"
	"testing"
)

type failingWriter struct {
	allow int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.allow <= 0 {
		return 0, errors.New("pipe closed")
	}
	w.allow--
	return len(p), nil
}

func TestTypeOut(t *testing.T) {
	var buf bytes.Buffer
	if err := TypeOut(&buf, "héllo wörld", 0); err != nil {
		t.Fatalf("TypeOut returned %v", err)
	}
	if got := buf.String(); got != "héllo wörld" {
		t.Errorf("TypeOut wrote %q", got)
	}
}

func TestTypeOutEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := TypeOut(&buf, "", 0); err != nil {
		t.Fatalf("TypeOut returned %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("TypeOut wrote %q for empty input", buf.String())
	}
}

func TestTypeOutWriteError(t *testing.T) {
	w := &failingWriter{allow: 2}
	if err := TypeOut(w, "abcdef", 0); err == nil {
		t.Error("TypeOut ignored a write error")
	}
}
