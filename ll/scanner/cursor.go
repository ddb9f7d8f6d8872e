package scanner

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/llcalc"
)

// --- Category codes --------------------------------------------------------

// CatCode is a category code for runes. Runes of equal category form
// sequences, unless they are loners.
type CatCode int16

// Category codes used by the default categorizer.
const (
	IllegalCatCode CatCode = iota
	CatDigit
	CatSpace
	CatOther
)

// RuneCategorizer assigns category codes to runes.
type RuneCategorizer interface {
	Cat(r rune) (cat CatCode, isLoner bool)
}

type arithmeticCategorizer struct{}

// Cat groups digits and whitespace into sequences; every other rune stands
// alone.
func (arithmeticCategorizer) Cat(r rune) (CatCode, bool) {
	switch {
	case IsDigit(r):
		return CatDigit, false
	case IsWhitespace(r):
		return CatSpace, false
	case r == utf8.RuneError:
		return IllegalCatCode, true
	}
	return CatOther, true
}

// --- Cursor tokenizer ------------------------------------------------------

// CursorTokenizer is a scanner working directly on an input string, with an
// explicit byte-position cursor. Create one with NewCursorTokenizer.
type CursorTokenizer struct {
	input  string
	cursor uint64          // position behind the last committed token
	cats   RuneCategorizer // categorizer for runes
	Error  func(error)     // error handler
}

var _ Tokenizer = (*CursorTokenizer)(nil)

// NewCursorTokenizer creates a scanner for an input string, with the cursor
// at position 0.
func NewCursorTokenizer(input string) *CursorTokenizer {
	return &CursorTokenizer{
		input: input,
		cats:  arithmeticCategorizer{},
		Error: logError,
	}
}

// SetErrorHandler sets an error handler for the scanner.
func (t *CursorTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// Cursor returns the current scanning position.
func (t *CursorTokenizer) Cursor() uint64 {
	return t.cursor
}

// Peek is part of the Tokenizer interface.
func (t *CursorTokenizer) Peek() llcalc.Token {
	pos := t.cursor
	for pos < t.length() {
		r, size := utf8.DecodeRuneInString(t.input[pos:])
		if cat, _ := t.cats.Cat(r); cat != CatSpace {
			break
		}
		pos += uint64(size)
	}
	if pos >= t.length() {
		return EOFToken(t.length())
	}
	r, size := utf8.DecodeRuneInString(t.input[pos:])
	if r == utf8.RuneError && size <= 1 {
		t.Error(fmt.Errorf("invalid UTF-8 encoding at position %d", pos))
	}
	cat, isLoner := t.cats.Cat(r)
	end := pos + uint64(size)
	for !isLoner && end < t.length() {
		r, size = utf8.DecodeRuneInString(t.input[end:])
		if c, _ := t.cats.Cat(r); c != cat {
			break
		}
		end += uint64(size)
	}
	span := llcalc.Span{pos, end}
	if cat == CatDigit {
		return MakeDefaultToken(Number, t.input[pos:end], span)
	}
	return MakeDefaultToken(llcalc.TokType(r), t.input[pos:end], span)
}

// Commit is part of the Tokenizer interface.
func (t *CursorTokenizer) Commit(token llcalc.Token) {
	tracer().Debugf("commit %v", token)
	t.cursor = token.Span().To()
}

func (t *CursorTokenizer) length() uint64 {
	return uint64(len(t.input))
}
