/*
Package scanner defines an interface for scanners to be used with the LL(1)
parser of package ll/parser.

Scanners for the parser are lazy: they produce the next token only on demand,
and they let the parser look at a token without consuming it. A token is
consumed only after the parser has decided that it matches.

Two implementations are provided: (1) a hand-written cursor scanner, and (2)
an adapter for lexmachine, living in sub-package `lexmach`. Both recognize the
same tokens:

■ a maximal run of decimal digits (token type Number)

■ the end of input, after skipping trailing whitespace (token type EOF)

■ any other single character, with the character as its token type

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"strconv"
	"text/scanner"

	"github.com/npillmayer/llcalc"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llcalc.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("llcalc.scanner")
}

// EOF is identical to text/scanner.EOF, Number is identical to text/scanner.Int.
// Token types are replicated here for practical reasons.
const (
	EOF    = scanner.EOF
	Number = scanner.Int
)

// Tokenizer is a scanner interface.
//
// Peek returns the next token without consuming it. Calling Peek repeatedly
// without Commit returns the same token. Commit moves the scanning cursor
// behind a token previously returned by Peek.
type Tokenizer interface {
	Peek() llcalc.Token
	Commit(llcalc.Token)
	Cursor() uint64
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// IsWhitespace is true for the characters a scanner skips between tokens.
func IsWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// IsDigit is true for ASCII decimal digits.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// NumberValue converts the lexeme of a Number token to its value.
// Runs of digits too large for float64 yield +Inf.
func NumberValue(lexeme string) float64 {
	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		tracer().Infof("number %q: %v", lexeme, err)
	}
	return f
}

// TokenString returns a printable representation of a token type.
func TokenString(tt llcalc.TokType) string {
	switch tt {
	case EOF:
		return "$"
	case Number:
		return "#num"
	}
	return fmt.Sprintf("%q", rune(tt))
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// cursor scanner as well as the lexmachine scanner.
type DefaultToken struct {
	kind   llcalc.TokType
	lexeme string
	Val    interface{}
	span   llcalc.Span
}

// MakeDefaultToken creates a token. For tokens of type Number, the value
// is set from the lexeme.
func MakeDefaultToken(typ llcalc.TokType, lexeme string, span llcalc.Span) DefaultToken {
	t := DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
	if typ == Number {
		t.Val = NumberValue(lexeme)
	}
	return t
}

// EOFToken creates an end-of-input token at position pos.
func EOFToken(pos uint64) DefaultToken {
	return DefaultToken{
		kind: EOF,
		span: llcalc.Span{pos, pos},
	}
}

func (t DefaultToken) TokType() llcalc.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() llcalc.Span {
	return t.span
}

func (t DefaultToken) String() string {
	if t.kind == EOF {
		return fmt.Sprintf("$%v", t.span)
	}
	return fmt.Sprintf("%q%v", t.lexeme, t.span)
}
