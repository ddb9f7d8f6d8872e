package ll

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/llcalc"
	"github.com/npillmayer/llcalc/ll/scanner"
)

// Symbol is a grammar symbol, either a non-terminal or a terminal.
type Symbol int8

// Non-terminals come first, then terminals. NoSymbol is the zero value.
const (
	NoSymbol Symbol = iota
	E               // expression
	A               // additive continuation
	T               // term
	B               // multiplicative continuation
	F               // factor
	Plus            // +
	Minus           // -
	Times           // *
	Divide          // /
	LParen          // (
	RParen          // )
	Number          // numeric literal
	EOF             // end of input, $
)

const (
	firstNonTerm = E
	firstTerm    = Plus
	lastTerm     = EOF
)

var symbolNames = [...]string{"?", "E", "A", "T", "B", "F",
	"+", "-", "*", "/", "(", ")", "#num", "$"}

func (sym Symbol) String() string {
	if sym < 0 || int(sym) >= len(symbolNames) {
		return fmt.Sprintf("Symbol(%d)", int(sym))
	}
	return symbolNames[sym]
}

// IsTerminal is true for terminal symbols.
func (sym Symbol) IsTerminal() bool {
	return sym >= firstTerm && sym <= lastTerm
}

// IsNonTerminal is true for E, A, T, B and F.
func (sym Symbol) IsNonTerminal() bool {
	return sym >= firstNonTerm && sym < firstTerm
}

// TokenType returns the token type a terminal is represented by.
func (sym Symbol) TokenType() llcalc.TokType {
	switch sym {
	case Number:
		return scanner.Number
	case EOF:
		return scanner.EOF
	}
	if sym.IsTerminal() {
		return llcalc.TokType(symbolNames[sym][0])
	}
	return 0
}

// Terminal returns the terminal symbol for a token. If the token does not
// represent a terminal of the grammar, Terminal returns NoSymbol.
func Terminal(token llcalc.Token) Symbol {
	switch tt := token.TokType(); tt {
	case scanner.Number:
		return Number
	case scanner.EOF:
		return EOF
	case '+':
		return Plus
	case '-':
		return Minus
	case '*':
		return Times
	case '/':
		return Divide
	case '(':
		return LParen
	case ')':
		return RParen
	}
	return NoSymbol
}

// --- Productions -----------------------------------------------------------

// Production is a grammar rule LHS ➞ RHS. An empty RHS denotes an epsilon
// production.
type Production struct {
	Serial int
	LHS    Symbol
	RHS    []Symbol
}

// IsEpsilon is true for productions with an empty RHS.
func (p *Production) IsEpsilon() bool {
	return len(p.RHS) == 0
}

func (p *Production) String() string {
	var b bytes.Buffer
	b.WriteString(p.LHS.String())
	b.WriteString(" ➞")
	if p.IsEpsilon() {
		b.WriteString(" ε")
	}
	for _, sym := range p.RHS {
		b.WriteString(" ")
		b.WriteString(sym.String())
	}
	return b.String()
}

func rule(serial int, lhs Symbol, rhs ...Symbol) *Production {
	return &Production{Serial: serial, LHS: lhs, RHS: rhs}
}

// productions holds the rules of the grammar, indexed by serial.
// Index 0 is unused.
var productions = []*Production{
	nil,
	rule(1, E, T, A),
	rule(2, A, Plus, E),
	rule(3, A, Minus, E),
	rule(4, A),
	rule(5, T, F, B),
	rule(6, B, Times, T),
	rule(7, B, Divide, T),
	rule(8, B),
	rule(9, F, Plus, F),
	rule(10, F, Minus, F),
	rule(11, F, Number),
	rule(12, F, LParen, E, RParen),
}

// Rule returns the production with serial number n, or nil.
func Rule(n int) *Production {
	if n <= 0 || n >= len(productions) {
		return nil
	}
	return productions[n]
}

// Rules returns all productions of the grammar, in serial order.
func Rules() []*Production {
	return append([]*Production(nil), productions[1:]...)
}

// Dump traces the grammar (debug level).
func Dump() {
	for _, p := range productions[1:] {
		tracer().Debugf("%3d: %s", p.Serial, p)
	}
}
