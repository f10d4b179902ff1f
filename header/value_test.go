package header_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/gortsp/header"
)

func TestNewValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      []byte
		want    header.Value
		wantErr error
	}{
		{"simple", []byte("npt=0-"), "npt=0-", nil},
		{"empty", []byte(""), "", nil},
		{"utf-8 multibyte", []byte("Sébastien"), "Sébastien", nil},
		{"overlong encoding", []byte{0xC0, 0x80}, "", header.ErrNotUTF8},
		{"truncated rune", []byte{'a', 0xE2, 0x82}, "", header.ErrNotUTF8},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := header.NewValue(c.in)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("NewValue(%q) error = %v, want %v", c.in, err, c.wantErr)
			}
			if got != c.want {
				t.Errorf("NewValue(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestValue_Equality(t *testing.T) {
	t.Parallel()

	// Value equality is plain byte comparison, no case folding.
	if header.Value("Play") == header.Value("play") {
		t.Error(`Value("Play") == Value("play"), values must compare case-sensitively`)
	}
	if header.Value("play") != header.Value("play") {
		t.Error(`Value("play") != Value("play"), identical values must compare equal`)
	}
}

func TestValue_IsValid(t *testing.T) {
	t.Parallel()

	if v := header.Value("12345"); !v.IsValid() {
		t.Errorf("Value(%q).IsValid() = false, want true", v)
	}
	if v := header.Value([]byte{0xC0, 0x80}); v.IsValid() {
		t.Errorf("Value(%q).IsValid() = true, want false", v)
	}
}
