package parser

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/llcalc"
	"github.com/npillmayer/llcalc/ast"
	"github.com/npillmayer/llcalc/ll"
)

// item is an entry of the parser's work stack.
//
// Non-terminals carry the slot where their node has to be stored.
// Terminals have a nil slot; span, if set, receives the input position the
// terminal is matched at.
type item struct {
	sym  ll.Symbol
	slot *ast.Node
	span *llcalc.Span
}

func (it item) String() string {
	return fmt.Sprintf("<%v>", it.sym)
}

// workStack is the parser stack. The top of stack is the symbol to be
// processed next.
type workStack struct {
	items *arraystack.Stack
}

func newWorkStack() *workStack {
	return &workStack{items: arraystack.New()}
}

func (ws *workStack) push(it item) {
	ws.items.Push(it)
}

// pushRHS pushes the items for a right hand side in reverse order, so that
// the leftmost symbol ends up on top.
func (ws *workStack) pushRHS(rhs []item) {
	for i := len(rhs) - 1; i >= 0; i-- {
		ws.items.Push(rhs[i])
	}
}

func (ws *workStack) pop() item {
	it, ok := ws.items.Pop()
	if !ok {
		panic("parser stack underflow")
	}
	return it.(item)
}

func (ws *workStack) top() (item, bool) {
	it, ok := ws.items.Peek()
	if !ok {
		return item{}, false
	}
	return it.(item), true
}

func (ws *workStack) empty() bool {
	return ws.items.Empty()
}

func (ws *workStack) size() int {
	return ws.items.Size()
}

// String lists the stack from top to bottom.
func (ws *workStack) String() string {
	return fmt.Sprintf("%v", ws.items.Values())
}
