// Package colwidth computes how many terminal columns text occupies.
//
// Widths come from an explicit table of glyphs that must render narrow (the
// powerline separators and the filler dot used by the status line) followed by
// the East Asian Width tables, with ambiguous-width code points treated as
// narrow. Code points neither table recognizes are one column.
//
// Control characters and combining marks are the exception to that default:
// they count as zero columns because they never advance the cursor.
package colwidth

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Glyphs drawn by the status line.
const (
	CaretLeft  = '\ue0b2'
	CaretRight = '\ue0b0'
	Filler     = '\u00b7'
)

// narrow lists presentation glyphs that occupy a single column even though
// they encode to several bytes and some tables classify them as ambiguous.
var narrow = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00b7, Hi: 0x00b7, Stride: 1},
		{Lo: 0xe0a0, Hi: 0xe0a3, Stride: 1},
		{Lo: 0xe0b0, Hi: 0xe0d7, Stride: 1},
	},
}

var eaw = &runewidth.Condition{
	EastAsianWidth:     false,
	StrictEmojiNeutral: true,
}

// Rune returns the number of columns r occupies.
func Rune(r rune) int {
	if unicode.Is(narrow, r) {
		return 1
	}
	return eaw.RuneWidth(r)
}

// String returns the number of columns s occupies. This is neither its byte
// length nor its rune count.
func String(s string) int {
	width := 0
	for _, r := range s {
		width += Rune(r)
	}
	return width
}
