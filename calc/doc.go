/*
Package calc evaluates arithmetic expressions. It glues together a tokenizer,
the LL(1) parser and the evaluator:

	v, err := calc.ParseAndEvaluate("(2+3)*4")   // v = 20

Expressions consist of non-negative integer literals, the binary operators
+ - * /, unary + and -, and parentheses. Arithmetic is done in float64;
division by zero results in ±Inf or NaN, not in an error.

Operators chain right to left, following the right-recursive grammar:

	10/2/5 = 10/(2/5) = 25

Option WithFold(ast.LeftFold) selects conventional left associativity
instead, where 10/2/5 = 1.

Syntax errors are reported as *parser.SyntaxError, carrying the position
of the offending input.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package calc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llcalc.calc'.
func tracer() tracing.Trace {
	return tracing.Select("llcalc.calc")
}
