// Package stringtoolkit provides string-transformation utilities for
// embedding in application code and CLI tooling: Unicode normalization,
// validation, palindrome and anagram checks, case conversion, slugs, masking
// and truncation, and a box-drawing table renderer that aligns cells by
// their visual width even when they carry terminal color escapes.
//
// This package is the zero-configuration surface: every function here is a
// plain call with no logger or options. Applications that want structured
// logging or warm-up control use the configurable facades in pkg/normalize
// and pkg/table instead.
package stringtoolkit
