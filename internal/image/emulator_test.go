package image

import "testing"

func TestDetectTerminal(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		want   Emulator
		tmux   bool
		inline bool
	}{
		{name: "empty", env: nil, want: EmulatorUnknown},
		{name: "iterm2", env: map[string]string{"TERM_PROGRAM": "iTerm.app"}, want: EmulatorIterm2, inline: true},
		{name: "iterm2 session", env: map[string]string{"ITERM_SESSION_ID": "w0t0p0"}, want: EmulatorIterm2, inline: true},
		{name: "wezterm", env: map[string]string{"TERM_PROGRAM": "WezTerm"}, want: EmulatorWezTerm, inline: true},
		{name: "kitty", env: map[string]string{"TERM": "xterm-kitty"}, want: EmulatorKitty},
		{name: "apple", env: map[string]string{"TERM_PROGRAM": "Apple_Terminal"}, want: EmulatorApple},
		{
			name:   "iterm2 in tmux",
			env:    map[string]string{"TMUX": "/tmp/tmux-501/default,1,0", "TERM_PROGRAM": "tmux", "LC_TERMINAL": "iTerm2"},
			want:   EmulatorIterm2,
			tmux:   true,
			inline: true,
		},
		{
			name: "tmux only",
			env:  map[string]string{"TERM": "tmux-256color"},
			want: EmulatorUnknown,
			tmux: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := detectTerminal(func(key string) string { return test.env[key] })
			if got.Emulator != test.want {
				t.Errorf("got emulator %s, want %s", got.Emulator, test.want)
			}
			if got.Tmux != test.tmux {
				t.Errorf("got tmux %t, want %t", got.Tmux, test.tmux)
			}
			if got.Emulator.SupportsInline() != test.inline {
				t.Errorf("got inline support %t, want %t", got.Emulator.SupportsInline(), test.inline)
			}
		})
	}
}

func TestEmulatorString(t *testing.T) {
	if s := EmulatorIterm2.String(); s != "iTerm2" {
		t.Errorf("unexpected name: %q", s)
	}
	if s := Emulator(-1).String(); s != "unknown" {
		t.Errorf("unexpected name: %q", s)
	}
	if s := Emulator(1000).String(); s != "unknown" {
		t.Errorf("unexpected name: %q", s)
	}
}

func TestWrapTmux(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: "\x1bPtmux;\x1b\\"},
		{input: "abc", want: "\x1bPtmux;abc\x1b\\"},
		{
			input: "\x1b]1337;File=size=0:\x07",
			want:  "\x1bPtmux;\x1b\x1b]1337;File=size=0:\x07\x1b\\",
		},
		{input: "\x1b\x1b", want: "\x1bPtmux;\x1b\x1b\x1b\x1b\x1b\\"},
		{input: "a\x1b", want: "\x1bPtmux;a\x1b\x1b\x1b\\"},
	}

	for _, test := range tests {
		if got := WrapTmux(test.input); got != test.want {
			t.Errorf("WrapTmux(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}
