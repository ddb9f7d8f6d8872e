package ast

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/npillmayer/llcalc"
	"github.com/npillmayer/llcalc/ll"
)

// Node is a node of an expression tree.
//
// Value returns the result computed for a node by Evaluate with RightFold,
// and 0 before evaluation.
type Node interface {
	Symbol() ll.Symbol // grammar symbol the node has been derived from
	Span() llcalc.Span // input span the node covers
	Value() float64
	Children() []Node
	setValue(float64)
}

type result struct {
	value float64
}

func (r *result) Value() float64 {
	return r.value
}

func (r *result) setValue(v float64) {
	r.value = v
}

// Literal is a numeric literal (F ➞ #num).
type Literal struct {
	Num    float64
	Lexeme string
	Extent llcalc.Span
}

// UnaryOp is an operator applied to a single operand. This is used for
// unary operators (F ➞ +F | -F) as well as for continuations
// (A ➞ +E | -E, B ➞ *T | /T).
type UnaryOp struct {
	result
	Sym     ll.Symbol // F, A or B
	Op      ll.Symbol // Plus, Minus, Times or Divide
	OpSpan  llcalc.Span
	Operand Node
}

// BinaryOp is a head followed by a continuation (E ➞ T A, T ➞ F B).
type BinaryOp struct {
	result
	Sym         ll.Symbol // E or T
	Left, Right Node
}

// Paren is a parenthesized expression (F ➞ ( E )).
type Paren struct {
	result
	Open, Close llcalc.Span
	Inner       Node
}

// Empty is a vanishing continuation (A ➞ ε, B ➞ ε).
type Empty struct {
	result
	Sym ll.Symbol // A or B
}

var _ Node = (*Literal)(nil)
var _ Node = (*UnaryOp)(nil)
var _ Node = (*BinaryOp)(nil)
var _ Node = (*Paren)(nil)
var _ Node = (*Empty)(nil)

// NewLiteral creates a literal node from a number token.
func NewLiteral(token llcalc.Token) *Literal {
	lit := &Literal{Lexeme: token.Lexeme(), Extent: token.Span()}
	if f, ok := token.Value().(float64); ok {
		lit.Num = f
	} else {
		lit.Num, _ = strconv.ParseFloat(token.Lexeme(), 64)
	}
	return lit
}

func (n *Literal) Symbol() ll.Symbol  { return ll.F }
func (n *Literal) Span() llcalc.Span  { return n.Extent }
func (n *Literal) Value() float64     { return n.Num }
func (n *Literal) Children() []Node   { return nil }
func (n *Literal) setValue(v float64) {}

func (n *UnaryOp) Symbol() ll.Symbol { return n.Sym }
func (n *UnaryOp) Span() llcalc.Span { return n.OpSpan.Extend(spanOf(n.Operand)) }
func (n *UnaryOp) Children() []Node  { return nonNil(n.Operand) }

func (n *BinaryOp) Symbol() ll.Symbol { return n.Sym }
func (n *BinaryOp) Span() llcalc.Span { return spanOf(n.Left).Extend(spanOf(n.Right)) }
func (n *BinaryOp) Children() []Node  { return nonNil(n.Left, n.Right) }

func (n *Paren) Symbol() ll.Symbol { return ll.F }
func (n *Paren) Span() llcalc.Span { return n.Open.Extend(spanOf(n.Inner)).Extend(n.Close) }
func (n *Paren) Children() []Node  { return nonNil(n.Inner) }

func (n *Empty) Symbol() ll.Symbol { return n.Sym }
func (n *Empty) Span() llcalc.Span { return llcalc.Span{} }
func (n *Empty) Children() []Node  { return nil }

func spanOf(n Node) llcalc.Span {
	if n == nil {
		return llcalc.Span{}
	}
	return n.Span()
}

func nonNil(nodes ...Node) []Node {
	children := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			children = append(children, n)
		}
	}
	return children
}

// --- Output ----------------------------------------------------------------

// String returns an expression as it would be typed in, with binary
// operators surrounded by blanks.
func String(n Node) string {
	var pieces []piece
	pieces = collect(pieces, n)
	var b bytes.Buffer
	for i, p := range pieces {
		if i > 0 && !pieces[i-1].glue && p.text != ")" {
			b.WriteString(" ")
		}
		b.WriteString(p.text)
	}
	return b.String()
}

// piece is an output token. Glued pieces are not followed by a blank.
type piece struct {
	text string
	glue bool
}

func collect(pieces []piece, n Node) []piece {
	switch x := n.(type) {
	case *Literal:
		pieces = append(pieces, piece{text: x.Lexeme})
	case *UnaryOp:
		// unary operators stick to their operand
		pieces = append(pieces, piece{text: x.Op.String(), glue: x.Sym == ll.F})
		pieces = collect(pieces, x.Operand)
	case *BinaryOp:
		pieces = collect(pieces, x.Left)
		pieces = collect(pieces, x.Right)
	case *Paren:
		pieces = append(pieces, piece{text: "(", glue: true})
		pieces = collect(pieces, x.Inner)
		pieces = append(pieces, piece{text: ")"})
	}
	return pieces
}

// Label returns a short description of a single node, including its value.
func Label(n Node) string {
	switch x := n.(type) {
	case *Literal:
		return fmt.Sprintf("#num %s", x.Lexeme)
	case *UnaryOp:
		return fmt.Sprintf("%v %v  = %g", x.Sym, x.Op, x.Value())
	case *Paren:
		return fmt.Sprintf("F ( )  = %g", x.Value())
	case *Empty:
		return fmt.Sprintf("%v ε  = %g", x.Sym, x.Value())
	case nil:
		return "<nil>"
	}
	return fmt.Sprintf("%v  = %g", n.Symbol(), n.Value())
}

// Walk visits the nodes of a tree in pre-order, together with their depth.
func Walk(n Node, visit func(n Node, level int)) {
	walk(n, 0, visit)
}

func walk(n Node, level int, visit func(Node, int)) {
	if n == nil {
		return
	}
	visit(n, level)
	for _, ch := range n.Children() {
		walk(ch, level+1, visit)
	}
}

// Dump traces a tree at debug level.
func Dump(n Node) {
	Walk(n, func(n Node, level int) {
		tracer().Debugf("%s%s %v", indent(level), Label(n), n.Span())
	})
}

func indent(level int) string {
	in := ""
	for level > 0 {
		in = in + ". "
		level--
	}
	return in
}
