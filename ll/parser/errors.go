package parser

import (
	"fmt"

	"github.com/npillmayer/llcalc/ll"
)

// ErrorKind classifies syntax errors.
type ErrorKind int

const (
	// ExpectedTerminal: a terminal on top of the stack did not match the input.
	ExpectedTerminal ErrorKind = iota
	// ExpectedOperand: no production for a non-terminal and the lookahead.
	ExpectedOperand
)

func (k ErrorKind) String() string {
	if k == ExpectedOperand {
		return "ExpectedOperand"
	}
	return "ExpectedTerminal"
}

// SyntaxError is the error returned for input not derivable from the grammar.
// Offset is the byte position of the offending token, after skipping
// whitespace.
type SyntaxError struct {
	Kind     ErrorKind
	Expected ll.Symbol // the terminal expected, for ExpectedTerminal
	Offset   uint64
}

func (e *SyntaxError) Error() string {
	return "syntax error: " + e.Reason() + fmt.Sprintf(" at position %d", e.Offset)
}

// Reason describes what the parser expected, without the position.
func (e *SyntaxError) Reason() string {
	if e.Kind == ExpectedOperand {
		return "expected a number or sub-expression"
	}
	if e.Expected == ll.EOF {
		return "expected end of input"
	}
	return fmt.Sprintf("expected `%v`", e.Expected)
}
