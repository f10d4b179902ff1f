package header

import (
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gortsp/internal/constraints"
)

// Value represents an RTSP header value.
//
// A Value is plain UTF-8 text. In contrast to [Name], values compare
// case-sensitively and the built-in == operator is the correct equality.
type Value string

// NewValue creates a Value from the given input s (string or []byte).
// It fails with an error wrapping [ErrNotUTF8] if s is not valid UTF-8.
// A string argument is taken as is without copying.
func NewValue[T constraints.Byteseq](s T) (Value, error) {
	if !utf8.ValidString(string(s)) {
		return "", errtrace.Wrap(NewNotUTF8Error("header value %q", string(s)))
	}
	return Value(s), nil
}

// String returns the value text unmodified.
func (v Value) String() string { return string(v) }

// IsValid reports whether the value holds the UTF-8 invariant.
// Every Value built by [NewValue] is valid; a conversion that bypassed the
// constructor may not be.
func (v Value) IsValid() bool { return utf8.ValidString(string(v)) }
