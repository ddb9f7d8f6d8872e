package ast

import (
	"github.com/npillmayer/llcalc/ll"
)

// Fold selects how chains of continuations are combined.
type Fold int

const (
	// RightFold evaluates every node on its own, following the right-recursive
	// grammar: a-b-c = a-(b-c), a/b/c = a/(b/c).
	RightFold Fold = iota
	// LeftFold folds continuation chains left to right: a-b-c = (a-b)-c.
	LeftFold
)

func (f Fold) String() string {
	if f == LeftFold {
		return "left"
	}
	return "right"
}

// Evaluate computes the value of an expression tree.
//
// With RightFold, every node of the tree is annotated with its value
// (see Node.Value). LeftFold does not annotate nodes.
func Evaluate(n Node, fold Fold) float64 {
	if n == nil {
		tracer().Errorf("cannot evaluate empty tree")
		return 0
	}
	var v float64
	if fold == LeftFold {
		v = foldLeft(n)
	} else {
		v = evalNode(n)
	}
	tracer().Debugf("%s-fold evaluation of %q = %g", fold, String(n), v)
	return v
}

// evalNode evaluates children first, then combines them according to the
// node's kind.
func evalNode(n Node) float64 {
	var v float64
	switch x := n.(type) {
	case *Literal:
		return x.Num
	case *Empty:
		v = identity(x.Sym)
	case *Paren:
		v = evalNode(x.Inner)
	case *UnaryOp:
		v = apply(x.Op, identity(x.Sym), evalNode(x.Operand))
	case *BinaryOp:
		l, r := evalNode(x.Left), evalNode(x.Right)
		if x.Sym == ll.T {
			v = l * r
		} else {
			v = l + r
		}
	}
	n.setValue(v)
	return v
}

// identity is the neutral element of a continuation: 1 for products and
// 0 for sums (and for unary operators).
func identity(sym ll.Symbol) float64 {
	if sym == ll.B {
		return 1
	}
	return 0
}

// apply combines an accumulated value with an operand.
//
//    0 + x = x,  0 - x = -x,  1 * x = x,  1 / x = 1/x
//
func apply(op ll.Symbol, acc, operand float64) float64 {
	switch op {
	case ll.Plus:
		return acc + operand
	case ll.Minus:
		return acc - operand
	case ll.Times:
		return acc * operand
	case ll.Divide:
		return acc / operand
	}
	tracer().Errorf("not an operator: %v", op)
	return acc
}

// foldLeft evaluates heads first and then applies the continuations in
// input order.
func foldLeft(n Node) float64 {
	switch x := n.(type) {
	case *Literal:
		return x.Num
	case *Empty:
		return identity(x.Sym)
	case *Paren:
		return foldLeft(x.Inner)
	case *UnaryOp:
		return apply(x.Op, identity(x.Sym), foldLeft(x.Operand))
	case *BinaryOp:
		return foldTail(x.Right, foldLeft(x.Left))
	}
	return 0
}

// foldTail walks a chain of continuations A ➞ ±E or B ➞ * T | / T. The operand of
// each link is itself a head (T or F) followed by the next link.
func foldTail(tail Node, acc float64) float64 {
	for {
		link, ok := tail.(*UnaryOp)
		if !ok {
			return acc
		}
		next, ok := link.Operand.(*BinaryOp)
		if !ok {
			return apply(link.Op, acc, foldLeft(link.Operand))
		}
		acc = apply(link.Op, acc, foldLeft(next.Left))
		tail = next.Right
	}
}
