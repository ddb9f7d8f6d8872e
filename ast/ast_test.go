package ast

import (
	"math"
	"strconv"
	"testing"

	"github.com/npillmayer/llcalc"
	"github.com/npillmayer/llcalc/ll"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// --- Tree construction helpers ---------------------------------------------

func num(v int) *Literal {
	return &Literal{Num: float64(v), Lexeme: strconv.Itoa(v)}
}

func expr(t, a Node) *BinaryOp {
	return &BinaryOp{Sym: ll.E, Left: t, Right: a}
}

func term(f, b Node) *BinaryOp {
	return &BinaryOp{Sym: ll.T, Left: f, Right: b}
}

func sum(op ll.Symbol, e Node) *UnaryOp {
	return &UnaryOp{Sym: ll.A, Op: op, Operand: e}
}

func product(op ll.Symbol, t Node) *UnaryOp {
	return &UnaryOp{Sym: ll.B, Op: op, Operand: t}
}

func unary(op ll.Symbol, f Node) *UnaryOp {
	return &UnaryOp{Sym: ll.F, Op: op, Operand: f}
}

func endA() *Empty { return &Empty{Sym: ll.A} }
func endB() *Empty { return &Empty{Sym: ll.B} }

// single wraps a factor into an expression without continuations.
func single(f Node) *BinaryOp {
	return expr(term(f, endB()), endA())
}

// chainDiv builds a/b/c as the grammar does: T(a, B(/ T(b, B(/ T(c, ε))))).
func chainDiv(a, b, c int) *BinaryOp {
	t := term(num(c), endB())
	t = term(num(b), product(ll.Divide, t))
	t = term(num(a), product(ll.Divide, t))
	return expr(t, endA())
}

// chainSub builds a-b-c as E(T(a), A(- E(T(b), A(- E(T(c), ε))))).
func chainSub(a, b, c int) *BinaryOp {
	e := expr(term(num(c), endB()), endA())
	e = expr(term(num(b), endB()), sum(ll.Minus, e))
	return expr(term(num(a), endB()), sum(ll.Minus, e))
}

// --- Tests -----------------------------------------------------------------

func TestEvalFolds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.ast")
	defer teardown()
	//
	for i, test := range []struct {
		tree        Node
		right, left float64
	}{
		{tree: chainDiv(10, 2, 5), right: 25, left: 1},
		{tree: chainSub(1, 2, 3), right: 2, left: -4},
		{tree: chainDiv(8, 4, 1), right: 2, left: 2},
		{tree: single(num(7)), right: 7, left: 7},
		{tree: single(unary(ll.Minus, num(5))), right: -5, left: -5},
		{tree: single(unary(ll.Minus, unary(ll.Minus, num(5)))), right: 5, left: 5},
		{tree: single(&Paren{Inner: chainSub(9, 4, 2)}), right: 7, left: 3},
	} {
		if v := Evaluate(test.tree, RightFold); v != test.right {
			t.Errorf("test %d: expected right fold of %q to be %g, is %g", i, String(test.tree), test.right, v)
		}
		if v := Evaluate(test.tree, LeftFold); v != test.left {
			t.Errorf("test %d: expected left fold of %q to be %g, is %g", i, String(test.tree), test.left, v)
		}
	}
}

func TestEvalAnnotatesNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.ast")
	defer teardown()
	//
	tree := chainDiv(10, 2, 5)
	Evaluate(tree, RightFold)
	Dump(tree)
	B := tree.Left.(*BinaryOp).Right.(*UnaryOp) // B ➞ / T(2 / 5)
	if B.Value() != 2.5 {
		t.Errorf("expected outer B to be 1/0.4 = 2.5, is %g", B.Value())
	}
	if v := B.Operand.Value(); v != 0.4 {
		t.Errorf("expected inner T to be 0.4, is %g", v)
	}
	if v := tree.Right.Value(); v != 0 {
		t.Errorf("expected A ➞ ε to be 0, is %g", v)
	}
	inner := B.Operand.(*BinaryOp).Right.(*UnaryOp).Operand.(*BinaryOp)
	if v := inner.Right.Value(); v != 1 {
		t.Errorf("expected B ➞ ε to be 1, is %g", v)
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.ast")
	defer teardown()
	//
	tree := expr(term(num(1), product(ll.Divide, term(num(0), endB()))), endA())
	if v := Evaluate(tree, RightFold); !math.IsInf(v, 1) {
		t.Errorf("expected 1/0 to be +Inf, is %g", v)
	}
	if v := Evaluate(tree, LeftFold); !math.IsInf(v, 1) {
		t.Errorf("expected 1/0 to be +Inf with left fold, is %g", v)
	}
}

func TestString(t *testing.T) {
	for _, test := range []struct {
		tree Node
		s    string
	}{
		{tree: chainDiv(10, 2, 5), s: "10 / 2 / 5"},
		{tree: chainSub(1, 2, 3), s: "1 - 2 - 3"},
		{tree: single(unary(ll.Minus, unary(ll.Plus, num(5)))), s: "-+5"},
		{tree: expr(term(&Paren{Inner: chainSub(1, 2, 3)}, product(ll.Times, term(num(4), endB()))), endA()),
			s: "(1 - 2 - 3) * 4"},
	} {
		if s := String(test.tree); s != test.s {
			t.Errorf("expected %q, have %q", test.s, s)
		}
	}
}

func TestSpanAndWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.ast")
	defer teardown()
	//
	// "-12" with '-' at (0…1) and 12 at (1…3)
	lit := &Literal{Num: 12, Lexeme: "12", Extent: llcalc.Span{1, 3}}
	f := &UnaryOp{Sym: ll.F, Op: ll.Minus, OpSpan: llcalc.Span{0, 1}, Operand: lit}
	tree := single(f)
	if s := tree.Span(); s != (llcalc.Span{0, 3}) {
		t.Errorf("expected tree to span (0…3), is %v", s)
	}
	levels := []int{}
	Walk(tree, func(n Node, level int) {
		levels = append(levels, level)
	})
	// E, T, F(-), #num, B ε, A ε
	expected := []int{0, 1, 2, 3, 2, 1}
	if len(levels) != len(expected) {
		t.Fatalf("expected %d nodes, walked %d", len(expected), len(levels))
	}
	for i := range levels {
		if levels[i] != expected[i] {
			t.Errorf("expected node #%d at level %d, is at %d", i, expected[i], levels[i])
		}
	}
}
