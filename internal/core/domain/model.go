package domain

// Text is an optional string with three observable states: missing,
// present-but-blank, and meaningful. The zero value is the missing state, so
// an absent value is never conflated with an empty string.
type Text struct {
	value   string
	present bool
}

// NewText wraps a raw string as a present Text value.
func NewText(s string) Text {
	return Text{value: s, present: true}
}

// NoText returns the missing state.
func NoText() Text {
	return Text{}
}

// Present reports whether the value carries a string at all, blank or not.
func (t Text) Present() bool {
	return t.present
}

// Value returns the raw string; empty when the value is missing.
func (t Text) Value() string {
	return t.value
}

// Field is one named cell of a table record. Value must be a string or a
// number; composite values are rejected at render time.
type Field struct {
	Key   string
	Value interface{}
}

// Record is an ordered sequence of fields. Order matters: the first record
// of a render call fixes the column order for the whole table.
type Record []Field

// Keys returns the field keys in declaration order.
func (r Record) Keys() []string {
	keys := make([]string, len(r))
	for i, f := range r {
		keys[i] = f.Key
	}
	return keys
}

// Lookup returns the value for key, searching in declaration order.
func (r Record) Lookup(key string) (interface{}, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Policy selects an array-normalization strategy.
type Policy int

const (
	// Balanced applies the base canonicalization to every surviving value.
	Balanced Policy = iota
	// Soft trims only, optionally lowercasing; accents and punctuation stay.
	Soft
	// Strict applies the alphanumeric-only, escape-stripped canonicalization.
	Strict
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Balanced:
		return "balanced"
	case Soft:
		return "soft"
	case Strict:
		return "strict"
	default:
		return "unknown"
	}
}
