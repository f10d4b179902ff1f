package ioutil_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ghettovoice/gortsp/internal/ioutil"
)

type errorWriter struct {
	failAfter int
	written   int
}

func (ew *errorWriter) Write(p []byte) (n int, err error) {
	if ew.written >= ew.failAfter {
		return 0, errors.New("write failed")
	}
	n = len(p)
	if ew.written+n > ew.failAfter {
		n = ew.failAfter - ew.written
	}
	ew.written += n
	if n < len(p) {
		return n, errors.New("write failed")
	}
	return n, nil
}

func TestCountingWriter_Write(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cw := ioutil.NewCountingWriter(buf)

	n, err := cw.Write([]byte("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 5 {
		t.Errorf("expected 5 bytes written, got %d", n)
	}

	n, err = cw.WriteString(" world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 6 {
		t.Errorf("expected 6 bytes written, got %d", n)
	}
	if cw.Count() != 11 {
		t.Errorf("expected count 11, got %d", cw.Count())
	}

	if buf.String() != "hello world" {
		t.Errorf("expected 'hello world', got %q", buf.String())
	}
}

func TestCountingWriter_Fprint(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cw := ioutil.NewCountingWriter(buf)

	if _, err := cw.Fprint("CSeq", ": ", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	num, err := cw.Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "CSeq: 1"; buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
	if num != len(buf.String()) {
		t.Errorf("expected count %d, got %d", len(buf.String()), num)
	}
}

func TestCountingWriter_ShortCircuitsAfterError(t *testing.T) {
	t.Parallel()

	cw := ioutil.NewCountingWriter(&errorWriter{failAfter: 3})

	if _, err := cw.WriteString("abcdef"); err == nil {
		t.Fatal("expected error, got nil")
	}

	n, err := cw.WriteString("more")
	if err == nil {
		t.Fatal("expected sticky error, got nil")
	}
	if n != 0 {
		t.Errorf("expected 0 bytes written after error, got %d", n)
	}

	num, err := cw.Result()
	if err == nil {
		t.Fatal("expected error from Result, got nil")
	}
	if num != 3 {
		t.Errorf("expected count 3, got %d", num)
	}
}

func TestCountingWriter_Pool(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cw := ioutil.GetCountingWriter(buf)
	if _, err := cw.WriteString("x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cw.Count() != 1 {
		t.Errorf("expected count 1, got %d", cw.Count())
	}
	ioutil.FreeCountingWriter(cw)

	cw = ioutil.GetCountingWriter(buf)
	if cw.Count() != 0 {
		t.Errorf("expected reset count 0, got %d", cw.Count())
	}
	ioutil.FreeCountingWriter(cw)
}
