package lexmach

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/llcalc"
	"github.com/npillmayer/llcalc/ll/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'llcalc.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("llcalc.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('(', '+', …) and a map for translating token strings to their
// token types.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// ArithmeticLexer creates an adapter for the tokens of arithmetic
// expressions: runs of digits, the operators + - * /, and parentheses.
// Operator tokens have the operator character as token type.
func ArithmeticLexer() (*LMAdapter, error) {
	literals := []string{"+", "-", "*", "/", "(", ")"}
	tokenIds := make(map[string]int, len(literals)+1)
	for _, lit := range literals {
		tokenIds[lit] = int(lit[0])
	}
	tokenIds["NUM"] = scanner.Number
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
		lexer.Add([]byte(`[0-9]+`), MakeToken("NUM", tokenIds["NUM"]))
	}
	return NewLMAdapter(init, literals, tokenIds)
}

// Tokenizer creates a tokenizer for a given input. The tokenizer will implement
// the scanner.Tokenizer interface.
func (lm *LMAdapter) Tokenizer(input string) (*LMTokenizer, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &LMTokenizer{scanner: s, text: s.Text, Error: logError}, nil
}

// LMTokenizer is a tokenizer type for lexmachine scanners, implementing the
// scanner.Tokenizer interface.
type LMTokenizer struct {
	scanner *lexmachine.Scanner
	text    []byte
	cursor  uint64       // position behind the last committed token
	peeked  llcalc.Token // cached result of Peek at cursor
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMTokenizer)(nil)

// SetErrorHandler sets an error handler for the tokenizer.
func (lmt *LMTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		lmt.Error = logError
		return
	}
	lmt.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// Cursor returns the current scanning position.
func (lmt *LMTokenizer) Cursor() uint64 {
	return lmt.cursor
}

// Peek is part of the Tokenizer interface. Lexmachine's text cursor is
// reset to the committed position after scanning ahead.
func (lmt *LMTokenizer) Peek() llcalc.Token {
	if lmt.peeked != nil {
		return lmt.peeked
	}
	lmt.scanner.TC = int(lmt.cursor)
	tok, err, eof := lmt.scanner.Next()
	lmt.scanner.TC = int(lmt.cursor)
	if err != nil {
		start := int(lmt.cursor)
		if ui, is := err.(*machines.UnconsumedInput); is {
			start = ui.StartTC
		} else {
			lmt.Error(err)
		}
		lmt.peeked = lmt.singleCharToken(start)
	} else if eof {
		lmt.peeked = scanner.EOFToken(uint64(len(lmt.text)))
	} else {
		tracer().Debugf("tok is %T | %v", tok, tok)
		token := tok.(*lexmachine.Token)
		from := uint64(token.TC)
		lmt.peeked = scanner.MakeDefaultToken(
			llcalc.TokType(token.Type),
			string(token.Lexeme),
			llcalc.Span{from, from + uint64(len(token.Lexeme))},
		)
	}
	return lmt.peeked
}

// Commit is part of the Tokenizer interface.
func (lmt *LMTokenizer) Commit(token llcalc.Token) {
	tracer().Debugf("commit %v", token)
	lmt.cursor = token.Span().To()
	lmt.peeked = nil
}

// singleCharToken wraps a character no lexmachine pattern matched.
func (lmt *LMTokenizer) singleCharToken(pos int) llcalc.Token {
	if pos >= len(lmt.text) {
		return scanner.EOFToken(uint64(len(lmt.text)))
	}
	r, size := utf8.DecodeRune(lmt.text[pos:])
	span := llcalc.Span{uint64(pos), uint64(pos + size)}
	return scanner.MakeDefaultToken(llcalc.TokType(r), string(lmt.text[pos:pos+size]), span)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
