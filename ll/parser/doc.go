/*
Package parser implements a table-driven LL(1) parser for arithmetic
expressions. The parser predicts productions from the transition table of
package ll, looking ahead a single token, and builds an expression tree
(package ast) top-down while it goes.

The parser keeps an explicit work stack of pairs (grammar symbol, slot). A
slot is the place in the tree where the node derived from the symbol has to
go. Expanding a non-terminal creates the node for the selected production,
stores it in the slot and pushes the right hand side symbols, each paired with
the child slot of the new node. Terminals are matched against the input and
carry no slot, but may record where they have been found.

Usage

	p := parser.NewParser(ll.DefaultTable())
	tree, err := p.Parse(scanner.NewCursorTokenizer("(2+3)*4"))
	if err != nil {
		var serr *parser.SyntaxError
		errors.As(err, &serr)  // serr.Offset tells where parsing failed
		...
	}
	value := ast.Evaluate(tree, ast.RightFold)

A parse either produces a complete tree or fails with the first syntax
error. There is no error recovery.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llcalc.parser'.
func tracer() tracing.Trace {
	return tracing.Select("llcalc.parser")
}
