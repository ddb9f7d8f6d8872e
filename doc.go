/*
Package llcalc is a small calculator for arithmetic expressions, built around
a table-driven LL(1) parser.

The interesting part is not the arithmetic, but the way it is parsed: there is
no recursive descent involved. Instead, a predictive parser keeps an explicit
stack of grammar symbols and consults a transition table for every step.
Package structure is as follows:

■ ll: Package ll holds the grammar symbols, the productions and the LL(1)
transition table. Sub-packages provide scanners (ll/scanner), a sparse matrix
for table storage (ll/sparse) and the parser engine (ll/parser).

■ ast: Package ast implements the abstract syntax tree produced by the parser
and evaluates it.

■ calc: Package calc glues everything together. Sub-package calc/crepl is an
interactive command line tool.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package llcalc
