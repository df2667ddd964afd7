package core

import (
	"bytes"
	"errors"
	"testing"
)

func TestPrinterColor(t *testing.T) {
	tests := []struct {
		name   string
		color  Color
		isTerm bool
		want   string
	}{
		{name: "on", color: ColorOn, isTerm: false, want: "\x1b[1mhi\x1b[0m"},
		{name: "off", color: ColorOff, isTerm: true, want: "hi"},
		{name: "auto terminal", color: ColorAuto, isTerm: true, want: "\x1b[1mhi\x1b[0m"},
		{name: "auto pipe", color: ColorAuto, isTerm: false, want: "hi"},
		{name: "unknown pipe", color: ColorUnknown, isTerm: false, want: "hi"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			p := newPrinter(&buf, test.isTerm, test.color)
			p.Set(Bold)
			p.WriteString("hi")
			p.Reset()

			if buf.Len() != 0 {
				t.Fatal("printer wrote before flush")
			}
			if err := p.Flush(); err != nil {
				t.Fatalf("unexpected error: %s", err.Error())
			}
			if got := buf.String(); got != test.want {
				t.Fatalf("got %q, want %q", got, test.want)
			}
			if len(p.Bytes()) != 0 {
				t.Fatal("buffer not reset after flush")
			}
		})
	}
}

func TestWriteErrorMsg(t *testing.T) {
	var stderr bytes.Buffer
	p := TestHandle(&stderr, nil).Stderr()

	WriteErrorMsg(p, errors.New("boom"))
	if got, want := stderr.String(), "error: boom\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	stderr.Reset()
	WriteErrorMsg(p, NewValueError("width", "10em", "must be a length", false))
	want := "error: invalid value '10em' for option '--width': must be a length\n"
	if got := stderr.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	stderr.Reset()
	WriteErrorMsg(p, NewValueError("width", "10em", "must be a length", true))
	want = "error: invalid value '10em' for option 'width': must be a length\n"
	if got := stderr.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWriteWarningMsg(t *testing.T) {
	var stderr bytes.Buffer
	p := TestHandle(&stderr, nil).Stderr()

	WriteWarningMsg(p, "careful")
	if got, want := stderr.String(), "warning: careful\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
