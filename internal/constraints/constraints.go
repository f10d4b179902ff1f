// Package constraints provides generic type constraints shared across the module.
package constraints

// Byteseq represents a generic byte string: an owned string or a raw byte
// slice as handed over by a lower-level message scanner.
type Byteseq interface {
	~string | ~[]byte
}
