// Package header provides facilities for working with RTSP message headers
// defined by RFC 7826 section 18.
//
// This package implements the header collection shared by requests and
// responses: a [Name] type whose equality, ordering and hashing are
// case-insensitive as required by the RTSP RFC, a [Value] type holding the
// UTF-8 header text, and [Headers], an ordered map from names to values with
// at most one entry per case-insensitive name.
//
// # Naming
//
// Header names are never normalized to a canonical case: a Name keeps the
// exact casing it was created with, and all comparisons fold ASCII letters to
// lower case instead. Use [Name.Equal] and [Name.Compare] rather than the
// built-in == operator, which compares raw bytes. Typed constants for all
// standardized RTSP header names ([Accept], [CSeq], [Session], [Transport],
// ...) are provided so call sites never hand-type name literals.
//
// Names must be ASCII. [NewName] rejects any input containing a byte >= 0x80
// with an error wrapping [ErrNotASCII].
//
// # Values
//
// Header values are plain UTF-8 text. [NewValue] rejects invalid UTF-8 with
// an error wrapping [ErrNotUTF8]. Unlike names, values compare
// case-sensitively; the built-in == operator is the correct equality.
//
// # The Headers collection
//
// [Headers] keeps its entries sorted in ascending case-insensitive name
// order, so iteration is deterministic and independent of both insertion
// order and input casing. [Headers.Insert] overwrites, [Headers.Append]
// merges repeated headers into a single comma-separated entry as defined in
// RFC 7826 section 5.2, and the [Headers.All], [Headers.Names] and
// [Headers.Values] iterators can be restarted any number of times.
//
// # Ingestion from the wire
//
// A lower-level message scanner hands over raw header entries as
// (name, value) byte pairs in which a value may still span multiple physical
// lines (header folding). [FromRaw] collapses every CRLF + whitespace
// continuation into a single space, validates the bytes and merges repeated
// names, producing a collection that downstream consumers can use without any
// line-folding concerns:
//
//	hs, err := header.FromRaw([]header.RawHeader{
//		{Name: []byte("CSeq"), Value: []byte("1")},
//		{Name: []byte("Public"), Value: []byte("DESCRIBE,\r\n SETUP")},
//	})
//
// # Concurrency
//
// All types in this package have plain value semantics: no operation blocks
// or performs I/O, and there is no hidden shared state. Read-only sharing
// across goroutines is safe; concurrent mutation requires external
// synchronization supplied by the caller.
//
// # References
//
//   - RFC 7826 - Real-Time Streaming Protocol Version 2.0
//   - RFC 7826 section 5.2 - merging of repeated header fields
//   - RFC 7826 section 18 - standardized header names
package header
