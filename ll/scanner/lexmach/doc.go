/*
Package lexmach provides an adapter to use the lexmachine scanner generator
as a scanner for the LL(1) parser.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Lexmachine has to be initialized by providing literals and regular expressions.
Please refer to the lexmachine documentation on how to instruct lexmachine.
For arithmetic expressions, a ready-made setup is available:

	LM, err := lexmach.ArithmeticLexer()
	if err != nil {
		// do error handling
	}

A tokenizer is instantiated for each concrete input sequence.
The tokenizer implements the scanner.Tokenizer interface.

	scan, err := LM.Tokenizer("input string to tokenize")
	if err != nil {
		// do error handling
	}

The parser will peek tokens and commit the ones it consumes. Peeking is
implemented by saving and restoring lexmachine's text cursor.

Input which no lexmachine pattern matches is not an error for the tokenizer:
it is delivered as a single-character token, leaving it to the parser to
reject it. This is the same behaviour as with the cursor scanner of package
scanner.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
