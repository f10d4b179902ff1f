package header

import (
	"bytes"
	"encoding/json"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gortsp/internal/errorutil"
)

// MarshalJSON encodes the collection as a JSON object whose members appear in
// map order, so the output is deterministic.
func (hs *Headers) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range hs.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		nb, err := json.Marshal(e.name.String())
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		buf.Write(nb)
		buf.WriteByte(':')
		vb, err := json.Marshal(e.value.String())
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the collection, replacing its
// previous content. Every member is validated like in [FromRaw]; members with
// case-insensitively equal names are merged via [Headers.Append] in document
// order.
func (hs *Headers) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return errtrace.Wrap(err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errtrace.Wrap(errorutil.Errorf("decode headers: expected JSON object, got %v", tok))
	}

	var hs2 Headers
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return errtrace.Wrap(err)
		}
		key, ok := tok.(string)
		if !ok {
			return errtrace.Wrap(errorutil.Errorf("decode headers: expected member name, got %v", tok))
		}

		var val string
		if err := dec.Decode(&val); err != nil {
			return errtrace.Wrap(err)
		}

		name, err := NewName(key)
		if err != nil {
			return errtrace.Wrap(err)
		}
		value, err := NewValue(val)
		if err != nil {
			return errtrace.Wrap(err)
		}
		hs2.Append(name, value)
	}
	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return errtrace.Wrap(err)
	}

	*hs = hs2
	return nil
}
