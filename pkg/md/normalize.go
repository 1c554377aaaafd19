package md

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FenceMarker delimits fenced code blocks.
const FenceMarker = "```"

// paragraphPunct lists the non-alphanumeric runes that count as part of a
// paragraph word when deciding whether a line break was only wrapping.
// Runes that open markdown blocks (- * + # >) are left out so lists,
// headings and quotes keep their own lines. A closing emphasis star and
// code span backticks are handled in isWrappedBreak.
const paragraphPunct = `.,;:!?'"_/&%()[]{}`

// Normalize joins line-wrapped prose into flowing paragraphs.
//
// The text is split on FenceMarker. Segments at even positions are prose:
// every line break whose neighbours are both paragraph word runes becomes a
// single space, so blank-line paragraph breaks survive. Segments at odd
// positions are code and are kept byte for byte. Every literal ``` counts as a
// marker, including ones inside inline code; an odd count fails with
// *UnbalancedFenceError.
func Normalize(text string) (string, error) {
	segments := strings.Split(text, FenceMarker)
	if len(segments)%2 == 0 {
		return "", &UnbalancedFenceError{Markers: len(segments) - 1}
	}

	for i := 0; i < len(segments); i += 2 {
		segments[i] = joinWrappedLines(segments[i])
	}
	return strings.Join(segments, FenceMarker), nil
}

// joinWrappedLines replaces each word-to-word line break with a space.
// Neighbours are read from the original text, so a break next to another
// break is never collapsed and the result is stable under repetition.
func joinWrappedLines(s string) string {
	if !strings.Contains(s, "\n") {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' && isWrappedBreak(s, i) {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

func isWrappedBreak(s string, i int) bool {
	if i == 0 || i == len(s)-1 {
		return false
	}
	prev, _ := utf8.DecodeLastRuneInString(s[:i])
	next, _ := utf8.DecodeRuneInString(s[i+1:])
	return (isParagraphRune(prev) || prev == '*' || prev == '`') &&
		(isParagraphRune(next) || next == '`')
}

func isParagraphRune(r rune) bool {
	if r == utf8.RuneError {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(paragraphPunct, r)
}
