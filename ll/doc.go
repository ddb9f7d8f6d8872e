/*
Package ll implements the grammar and the transition table for LL(1) parsing
of arithmetic expressions.

The Grammar

The grammar is small and fixed. It avoids left recursion by splitting sums and
products into a head and a right-recursive continuation:

    1: E  ➞  T A
    2: A  ➞  + E
    3: A  ➞  - E
    4: A  ➞  ε
    5: T  ➞  F B
    6: B  ➞  * T
    7: B  ➞  / T
    8: B  ➞  ε
    9: F  ➞  + F
   10: F  ➞  - F
   11: F  ➞  #num
   12: F  ➞  ( E )

E is an expression, A the additive continuation of an expression, T a term,
B the multiplicative continuation of a term and F a factor. Unary plus and minus
may be nested to any depth (F ➞ - F).

Transition Table

The transition table maps a pair (non-terminal, lookahead terminal) to at most
one production. The entries are enumerated explicitly, there is no parser
generator involved:

    tbl := ll.DefaultTable()
    p, ok := tbl.Select(ll.E, token)   // token is a llcalc.Token
    if !ok {
        // syntax error
    }

Internally, the table is stored as a sparse matrix, with production serials as
values.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llcalc.ll'.
func tracer() tracing.Trace {
	return tracing.Select("llcalc.ll")
}
