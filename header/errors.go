package header

import (
	"github.com/ghettovoice/gortsp/internal/errorutil"
)

// ErrNotASCII is returned by [NewName] and [FromRaw] when a header name
// contains a byte outside the ASCII range.
const ErrNotASCII errorutil.Error = "invalid ASCII"

// ErrNotUTF8 is returned by [NewValue] and [FromRaw] when a header value is
// not valid UTF-8.
const ErrNotUTF8 errorutil.Error = "invalid UTF-8"

// NewNotASCIIError creates a new error with [ErrNotASCII] or wraps the
// provided error with [ErrNotASCII].
func NewNotASCIIError(args ...any) error {
	return errorutil.NewWrapperError(ErrNotASCII, args...) //errtrace:skip
}

// NewNotUTF8Error creates a new error with [ErrNotUTF8] or wraps the
// provided error with [ErrNotUTF8].
func NewNotUTF8Error(args ...any) error {
	return errorutil.NewWrapperError(ErrNotUTF8, args...) //errtrace:skip
}
