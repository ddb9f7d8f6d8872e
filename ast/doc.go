/*
Package ast implements the abstract syntax tree for arithmetic expressions and
its evaluation.

The parser creates the tree top-down, one node per expanded production, so the
tree mirrors the (right-recursive) grammar of package ll:

    "2-3*4"   ⇒   E
                  ├── T
                  │   ├── #num 2
                  │   └── B ε
                  └── A -
                      └── E
                          ├── T
                          │   ├── #num 3
                          │   └── B *
                          │       └── T
                          │           ├── #num 4
                          │           └── B ε
                          └── A ε

Nodes are of one of five kinds: Literal (F ➞ #num), UnaryOp (F ➞ ±F,
A ➞ ±E, B ➞ * T | / T), BinaryOp (E ➞ T A, T ➞ F B), Paren (F ➞ ( E )) and
Empty (A ➞ ε, B ➞ ε).

Evaluation

Evaluate walks the tree post-order. With RightFold, every node is evaluated
on its own, exactly as the grammar nests it: a continuation A contributes
+E or −E to the expression, and a continuation B multiplies the term by T or
by 1/T. Sums and products therefore associate to the right,

    10/2/5  =  10 · 1/(2 · 1/5)  =  25
    1-2-3   =  1 + −(2 + −3)     =  2

With LeftFold, continuation chains are folded left to right instead, which
gives conventional arithmetic (10/2/5 = 1, 1-2-3 = −4) on the very same tree.

All arithmetic is done in float64. Division by zero is not an error, but
results in ±Inf or NaN.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llcalc.ast'.
func tracer() tracing.Trace {
	return tracing.Select("llcalc.ast")
}
