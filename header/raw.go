package header

import (
	"bytes"

	"braces.dev/errtrace"
)

// RawHeader is a single header entry as tokenized from the wire by a
// lower-level message scanner. Value preserves literal CRLF + whitespace
// continuation bytes exactly as they appeared on the wire.
type RawHeader struct {
	Name  []byte
	Value []byte
}

// FromRaw builds a [Headers] collection from raw header entries.
//
// Header values can be split over multiple lines, in which case there is a
// CRLF followed by one or more spaces/tabs; every such run is replaced with a
// single space (none when the run ends the value). Entries whose names are
// case-insensitively equal are merged into one comma-separated entry via
// [Headers.Append].
//
// The upstream scanner is expected to deliver ASCII names and UTF-8 values;
// FromRaw still validates both and fails with an error wrapping [ErrNotASCII]
// or [ErrNotUTF8], so a buggy or untrusted scanner cannot corrupt the
// collection.
func FromRaw(raw []RawHeader) (Headers, error) {
	var hs Headers
	for i := range raw {
		name, err := NewName(raw[i].Name)
		if err != nil {
			return Headers{}, errtrace.Wrap(err)
		}
		value, err := NewValue(unfold(raw[i].Value))
		if err != nil {
			return Headers{}, errtrace.Wrap(err)
		}
		hs.Append(name, value)
	}
	return hs, nil
}

var crlf = []byte("\r\n")

// unfold collapses header line folding: each CRLF and the spaces/tabs
// following it become a single space, or nothing when the fold run reaches
// the end of the value. All other bytes, a lone CR included, pass through
// unchanged.
func unfold(raw []byte) []byte {
	if !bytes.Contains(raw, crlf) {
		return raw
	}

	value := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); {
		if raw[i] == '\r' && i+1 < len(raw) && raw[i+1] == '\n' {
			i += 2
			for i < len(raw) && (raw[i] == ' ' || raw[i] == '\t') {
				i++
			}
			if i < len(raw) {
				value = append(value, ' ')
			}
			continue
		}
		value = append(value, raw[i])
		i++
	}
	return value
}
