package header

//go:generate go tool errtrace -w .

import (
	"cmp"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gortsp/internal/constraints"
	"github.com/ghettovoice/gortsp/internal/util"
)

// Name represents an RTSP header name.
//
// Names contain ASCII characters only and compare case-insensitively as
// required by the RTSP RFC. They are not normalized to a specific case but
// stored as created: comparisons go through [Name.Equal], [Name.Compare] and
// [Name.Hash], never through the raw == operator or a built-in map key, both
// of which would distinguish casings that the protocol treats as identical.
type Name string

// NewName creates a Name from the given input s (string or []byte).
// It fails with an error wrapping [ErrNotASCII] if any byte of s is outside
// the ASCII range. A string argument is taken as is without copying.
func NewName[T constraints.Byteseq](s T) (Name, error) {
	if !util.IsASCII(s) {
		return "", errtrace.Wrap(NewNotASCIIError("header name %q", string(s)))
	}
	return Name(s), nil
}

// MustName is like [NewName] but panics on invalid input.
// It is intended for name literals known to be ASCII.
func MustName[T constraints.Byteseq](s T) Name {
	return util.Must2(NewName(s))
}

// String returns the name with its original casing preserved.
func (n Name) String() string { return string(n) }

// IsValid reports whether the name holds the ASCII invariant.
// Every Name built by [NewName] is valid; a conversion that bypassed the
// constructor may not be.
func (n Name) IsValid() bool { return util.IsASCII(n) }

// Equal reports whether two names are equal under ASCII case folding.
func (n Name) Equal(other Name) bool {
	if len(n) != len(other) {
		return false
	}
	for i := 0; i < len(n); i++ {
		if util.LowerASCII(n[i]) != util.LowerASCII(other[i]) {
			return false
		}
	}
	return true
}

// Compare orders two names case-insensitively and lexicographically:
// each byte is folded to lower case before comparison, the first unequal pair
// decides, and when one name is a prefix of the other the shorter sorts
// first. It returns -1, 0 or +1 like [cmp.Compare]. This is the ordering used
// by [Headers], which makes its iteration deterministic regardless of the
// original input casing.
func (n Name) Compare(other Name) int {
	l := min(len(n), len(other))
	for i := 0; i < l; i++ {
		b, ob := util.LowerASCII(n[i]), util.LowerASCII(other[i])
		if b != ob {
			return cmp.Compare(b, ob)
		}
	}
	return cmp.Compare(len(n), len(other))
}

// FNV-1a parameters, see hash/fnv.
const (
	fnvOffset64 uint64 = 14695981039346656037
	fnvPrime64  uint64 = 1099511628211
)

// Hash returns a 64-bit FNV-1a hash of the name folded to lower case.
// Names that are equal under [Name.Equal] always hash identically, so the
// result is safe to use as the key of a hash-based container. Hashing the raw
// bytes instead would break that contract for names differing only in case.
func (n Name) Hash() uint64 {
	h := fnvOffset64
	for i := 0; i < len(n); i++ {
		h ^= uint64(util.LowerASCII(n[i]))
		h *= fnvPrime64
	}
	return h
}
