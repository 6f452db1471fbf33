package tui

import "testing"

func TestEraseLastWord(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"hello world", "hello "},
		{"hello", ""},
		{"hello ", ""},
		{"hello world  ", "hello "},
		{"a b c", "a b "},
		{"  x", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := eraseLastWord(c.in); got != c.want {
			t.Fatalf("eraseLastWord(%q): want %q, got %q", c.in, c.want, got)
		}
	}
}

func TestRepeatedWordEraseEmptiesBuffer(t *testing.T) {
	d := draft{text: "one two three "}
	for i := 0; i < 3; i++ {
		if !d.eraseWord() {
			t.Fatalf("erase %d reported no change", i)
		}
	}
	if d.String() != "" {
		t.Fatalf("expected empty buffer, got %q", d.String())
	}
	if d.eraseWord() {
		t.Fatalf("erase on empty buffer must be a no-op")
	}
}

func TestBackspaceRemovesWholeRune(t *testing.T) {
	d := draft{text: "café"}
	d.backspace()
	if d.String() != "caf" {
		t.Fatalf("expected multi-byte rune removed, got %q", d.String())
	}
	d.reset()
	if d.backspace() {
		t.Fatalf("backspace on empty buffer must be a no-op")
	}
}

func TestInsertDropsControlRunes(t *testing.T) {
	var d draft
	if d.insert([]rune{'\n', '\t'}) {
		t.Fatalf("expected control runes to be dropped")
	}
	if !d.insert([]rune("Hi there")) {
		t.Fatalf("expected printable runes to be kept")
	}
	if d.String() != "Hi there" {
		t.Fatalf("unexpected buffer %q", d.String())
	}
}
