package tui

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// draft is the text of an item being typed.
type draft struct {
	text string
}

func (d *draft) String() string {
	return d.text
}

func (d *draft) reset() {
	d.text = ""
}

// insert appends the printable runes of rs and reports whether any were kept.
func (d *draft) insert(rs []rune) bool {
	var b strings.Builder
	for _, r := range rs {
		if unicode.IsPrint(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return false
	}
	d.text += b.String()
	return true
}

func (d *draft) backspace() bool {
	if d.text == "" {
		return false
	}
	_, size := utf8.DecodeLastRuneInString(d.text)
	d.text = d.text[:len(d.text)-size]
	return true
}

func (d *draft) eraseWord() bool {
	if d.text == "" {
		return false
	}
	d.text = eraseLastWord(d.text)
	return true
}

// eraseLastWord drops trailing spaces and the word before them. With one
// word or less nothing is left; otherwise a single separating space stays
// so typing can continue.
func eraseLastWord(s string) string {
	s = strings.TrimRight(s, " ")
	i := strings.LastIndexByte(s, ' ')
	if i < 0 {
		return ""
	}
	rest := strings.TrimRight(s[:i], " ")
	if rest == "" {
		return ""
	}
	return rest + " "
}
