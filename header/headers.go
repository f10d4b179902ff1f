package header

import (
	"io"
	"iter"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gortsp/internal/ioutil"
	"github.com/ghettovoice/gortsp/internal/util"
)

// Headers is a collection of RTSP headers together with their values.
//
// Entries are kept sorted in ascending case-insensitive name order (see
// [Name.Compare]) and there is at most one entry per case-insensitive name.
// The zero value is an empty collection ready for use.
//
// A Headers value holds its entries in a shared backing slice, like a map or
// a slice does; use [Headers.Clone] when an independent copy is needed.
type Headers struct {
	entries []hdrEntry
}

type hdrEntry struct {
	name  Name
	value Value
}

// search locates name in the sorted entry slice.
func (hs *Headers) search(name Name) (int, bool) {
	return slices.BinarySearchFunc(hs.entries, name, func(e hdrEntry, n Name) int {
		return e.name.Compare(n)
	})
}

// Len returns the number of header entries.
func (hs *Headers) Len() int { return len(hs.entries) }

// Insert inserts an RTSP header with its value.
//
// If a header with the same name already exists then its value is replaced,
// while the stored name keeps the casing it was first inserted with.
//
// See [Headers.Append] for appending additional values to a header.
func (hs *Headers) Insert(name Name, value Value) {
	if i, ok := hs.search(name); ok {
		hs.entries[i].value = value
	} else {
		hs.entries = slices.Insert(hs.entries, i, hdrEntry{name: name, value: value})
	}
}

// Append appends a value to an existing RTSP header or inserts it.
//
// Additional values are comma separated as defined in RFC 7826 section 5.2:
// the stored value becomes "old, new".
func (hs *Headers) Append(name Name, value Value) {
	if i, ok := hs.search(name); ok {
		hs.entries[i].value += ", " + value
	} else {
		hs.entries = slices.Insert(hs.entries, i, hdrEntry{name: name, value: value})
	}
}

// Remove removes an RTSP header if it exists. Removing an absent name is a no-op.
func (hs *Headers) Remove(name Name) {
	if i, ok := hs.search(name); ok {
		hs.entries = slices.Delete(hs.entries, i, i+1)
	}
}

// Get returns the value of the header with the given name, looked up
// case-insensitively.
func (hs *Headers) Get(name Name) (Value, bool) {
	if i, ok := hs.search(name); ok {
		return hs.entries[i].value, true
	}
	return "", false
}

// GetMut returns a pointer to the stored value of the header with the given
// name for in-place mutation, or nil if the header is absent. The pointer
// stays valid until the next mutating call on hs.
func (hs *Headers) GetMut(name Name) *Value {
	if i, ok := hs.search(name); ok {
		return &hs.entries[i].value
	}
	return nil
}

// Has reports whether a header with the given name exists.
func (hs *Headers) Has(name Name) bool {
	_, ok := hs.search(name)
	return ok
}

// All returns an iterator over all header name and value pairs in ascending
// case-insensitive name order. The sequence is finite and can be restarted.
func (hs *Headers) All() iter.Seq2[Name, Value] {
	return func(yield func(Name, Value) bool) {
		for _, e := range hs.entries {
			if !yield(e.name, e.value) {
				return
			}
		}
	}
}

// Names returns an iterator over all header names in ascending
// case-insensitive order.
func (hs *Headers) Names() iter.Seq[Name] {
	return func(yield func(Name) bool) {
		for _, e := range hs.entries {
			if !yield(e.name) {
				return
			}
		}
	}
}

// Values returns an iterator over all header values, ordered by their names.
func (hs *Headers) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, e := range hs.entries {
			if !yield(e.value) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the collection.
func (hs *Headers) Clone() Headers {
	return Headers{entries: slices.Clone(hs.entries)}
}

// Equal reports whether two collections hold the same entries: names are
// compared case-insensitively, values byte for byte.
func (hs *Headers) Equal(other *Headers) bool {
	if hs == other {
		return true
	} else if hs == nil || other == nil {
		return false
	}
	return slices.EqualFunc(hs.entries, other.entries, func(e1, e2 hdrEntry) bool {
		return e1.name.Equal(e2.name) && e1.value == e2.value
	})
}

// RenderTo writes every header as a "Name: value" line terminated by CRLF,
// in map order. Message-level framing, the empty line included, is the
// caller's concern.
func (hs *Headers) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for _, e := range hs.entries {
		cw.Fprint(e.name, ": ", e.value, "\r\n") //nolint:errcheck
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the headers rendered as CRLF-terminated lines.
func (hs *Headers) Render() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hs.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// String implements fmt.Stringer, it is an alias for [Headers.Render].
func (hs *Headers) String() string { return hs.Render() }
