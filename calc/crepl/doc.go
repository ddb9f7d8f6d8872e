/*
Package crepl/main provides an interactive command line calculator (C.REPL)
for arithmetic expressions. Every line entered is parsed by the LL(1) parser
and evaluated; the result or the position of a syntax error is printed.

Besides expressions, C.REPL understands a few commands:

	tree <expr>   display the expression tree for <expr>, with values
	table         display the LL(1) transition table
	quit          leave C.REPL (as does <ctrl>D)

Flags:

	-trace   trace level [Debug|Info|Error]
	-scanner tokenizer to use [cursor|lexmachine]
	-fold    associativity of operator chains [right|left]
	-init    file of expressions to evaluate at startup

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llcalc.calc'
func tracer() tracing.Trace {
	return tracing.Select("llcalc.calc")
}
