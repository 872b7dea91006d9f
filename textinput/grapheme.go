package textinput

import (
	"unicode"
	"unicode/utf8"
)

// Grapheme and word boundary helpers.
//
// No library in the retrieval pack exposes Unicode extended grapheme
// cluster segmentation (UAX #29): golang.org/x/text ships only as an
// indirect dependency of other packages here, and its public surface
// (unicode/norm, unicode/width, ...) does not include segmentation. Rather
// than invent a dependency that is not actually grounded in the pack, this
// file hand-rolls the subset of UAX #29 the spec actually exercises —
// keeping a combining mark attached to its base rune, and a simple
// letter/digit/space word classification. A full implementation would
// consult east_asian_width and script-specific tables the spec does not
// require (see DESIGN.md).

// isGraphemeExtender reports whether r should stay attached to the
// preceding rune when moving by grapheme clusters (combining marks and
// zero-width joiners).
func isGraphemeExtender(r rune) bool {
	return unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || r == 0x200D
}

// NextGraphemeBoundary returns the next grapheme-cluster boundary at or
// after offset (which must already be a rune boundary).
func NextGraphemeBoundary(s string, offset int) int {
	offset = safeByteOffset(s, offset)
	if offset >= len(s) {
		return len(s)
	}
	_, size := utf8.DecodeRuneInString(s[offset:])
	offset += size
	for offset < len(s) {
		r, size := utf8.DecodeRuneInString(s[offset:])
		if !isGraphemeExtender(r) {
			break
		}
		offset += size
	}
	return offset
}

// PreviousGraphemeBoundary returns the previous grapheme-cluster boundary
// before offset.
func PreviousGraphemeBoundary(s string, offset int) int {
	offset = safeByteOffset(s, offset)
	if offset <= 0 {
		return 0
	}
	offset = previousRuneBoundary(s, offset)
	for offset > 0 {
		r, _ := utf8.DecodeRuneInString(s[offset:])
		if !isGraphemeExtender(r) {
			break
		}
		offset = previousRuneBoundary(s, offset)
	}
	return offset
}

// PreviousCharBoundary returns the previous plain rune boundary, ignoring
// grapheme clustering, so deleting backward can remove a lone combining
// mark (spec §4.3: "'previous-char' intentionally ignores grapheme
// clustering").
func PreviousCharBoundary(s string, offset int) int {
	return previousRuneBoundary(s, safeByteOffset(s, offset))
}

func previousRuneBoundary(s string, offset int) int {
	if offset <= 0 {
		return 0
	}
	offset--
	for offset > 0 && isUTF8Continuation(s[offset]) {
		offset--
	}
	return offset
}

type wordClass int

const (
	wordClassOther wordClass = iota
	wordClassAlnum
	wordClassSpace
)

func classOf(r rune) wordClass {
	switch {
	case unicode.IsSpace(r):
		return wordClassSpace
	case unicode.IsLetter(r) || unicode.IsDigit(r):
		return wordClassAlnum
	default:
		return wordClassOther
	}
}

// NextWordBoundary returns the byte offset of the start of the next word
// after offset: it skips the run of same-class runes under offset, then any
// whitespace. A run of punctuation counts as a word of its own.
func NextWordBoundary(s string, offset int) int {
	offset = safeByteOffset(s, offset)
	runes := []rune(s[offset:])
	if len(runes) == 0 {
		return len(s)
	}
	i := 0
	cls := classOf(runes[0])
	for i < len(runes) && classOf(runes[i]) == cls {
		i++
	}
	for i < len(runes) && classOf(runes[i]) == wordClassSpace {
		i++
	}
	return offset + runeSliceByteLen(runes[:i])
}

// PreviousWordBoundary returns the byte offset of the start of the word
// offset currently sits in (or the previous word, if offset is already at
// a word start).
func PreviousWordBoundary(s string, offset int) int {
	offset = safeByteOffset(s, offset)
	runes := []rune(s[:offset])
	i := len(runes)
	for i > 0 && classOf(runes[i-1]) == wordClassSpace {
		i--
	}
	if i == 0 {
		return 0
	}
	cls := classOf(runes[i-1])
	for i > 0 && classOf(runes[i-1]) == cls {
		i--
	}
	return runeSliceByteLen(runes[:i])
}

func runeSliceByteLen(runes []rune) int {
	n := 0
	for _, r := range runes {
		n += utf8.RuneLen(r)
	}
	return n
}
