package iterm2img

import "testing"

func TestLengthString(t *testing.T) {
	tests := []struct {
		l    Length
		want string
	}{
		{Cells(0), "0"},
		{Cells(100), "100"},
		{Pixels(100), "100px"},
		{Percent(50), "50%"},
		{Auto(), "auto"},
		{Length{}, "0"},
		{Cells(18446744073709551615), "18446744073709551615"},
	}

	for _, test := range tests {
		if got := test.l.String(); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		input string
		want  Length
		err   bool
	}{
		{input: "auto", want: Auto()},
		{input: "0", want: Cells(0)},
		{input: "80", want: Cells(80)},
		{input: "640px", want: Pixels(640)},
		{input: "50%", want: Percent(50)},
		{input: "", err: true},
		{input: "px", err: true},
		{input: "%", err: true},
		{input: "-1", err: true},
		{input: "+1", err: true},
		{input: "1.5", err: true},
		{input: "10em", err: true},
		{input: "AUTO", err: true},
		{input: "18446744073709551616", err: true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got, err := ParseLength(test.input)
			if test.err {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err.Error())
			}
			if got != test.want {
				t.Fatalf("got %v, want %v", got, test.want)
			}
			if got.String() != test.input {
				t.Fatalf("String() = %q, want %q", got.String(), test.input)
			}
		})
	}
}

func TestLengthText(t *testing.T) {
	for _, l := range []Length{Cells(80), Pixels(640), Percent(50), Auto()} {
		b, err := l.MarshalText()
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if string(b) != l.String() {
			t.Fatalf("MarshalText() = %q, want %q", b, l.String())
		}

		var got Length
		if err := got.UnmarshalText(b); err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if got != l {
			t.Fatalf("got %v, want %v", got, l)
		}
	}

	var l Length
	if err := l.UnmarshalText([]byte("10em")); err == nil {
		t.Fatal("expected error for invalid length")
	}
}
