package main

import "testing"

func TestCleanClipboardText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "hello", "hello"},
		{"crlf", "a\r\nb\rc", "a\nb\nc"},
		{"tabs", "a\tb", "a    b"},
		{"trailing newlines", "line\n\n\n", "line"},
		{"control chars", "a\x07b\x7fc", "abc"},
		{"html", "<html><body><p>a &amp; b &lt;3</p></body></html>", "a & b <3"},
		{"rtf", `{\rtf1\ansi\f0 Hello\par World\}}`, "Hello\nWorld}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanClipboardText(tt.in); got != tt.want {
				t.Errorf("cleanClipboardText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripRTF(t *testing.T) {
	got := stripRTF(`{\rtf1 one\line two\tab three \\ \{x\}}`)
	want := "one\ntwo\tthree \\ {x}"
	if got != want {
		t.Errorf("stripRTF = %q, want %q", got, want)
	}
}

func TestIsHTML(t *testing.T) {
	if !isHTML("  <div>hi</div>") {
		t.Error("div fragment should be HTML")
	}
	if isHTML("a < b") {
		t.Error("plain comparison is not HTML")
	}
}
