package calc

import (
	"fmt"
	"sync"

	"github.com/npillmayer/llcalc/ast"
	"github.com/npillmayer/llcalc/ll"
	"github.com/npillmayer/llcalc/ll/parser"
	"github.com/npillmayer/llcalc/ll/scanner"
	"github.com/npillmayer/llcalc/ll/scanner/lexmach"
)

// Option configures a single evaluation.
type Option func(c *config)

type config struct {
	lexmachine bool
	fold       ast.Fold
}

// WithLexmachine selects a tokenizer built with lexmachine, instead of the
// default cursor-based one. Both produce the same tokens.
func WithLexmachine() Option {
	return func(c *config) {
		c.lexmachine = true
	}
}

// WithFold sets how chains of operators are evaluated. Default is
// ast.RightFold.
func WithFold(fold ast.Fold) Option {
	return func(c *config) {
		c.fold = fold
	}
}

func makeConfig(opts []Option) *config {
	c := &config{fold: ast.RightFold}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var lmAdapter *lexmach.LMAdapter
var lmError error
var lmOnce sync.Once

// lexer returns the shared lexmachine adapter, compiling its DFA on first use.
func lexer() (*lexmach.LMAdapter, error) {
	lmOnce.Do(func() {
		lmAdapter, lmError = lexmach.ArithmeticLexer()
		if lmError != nil {
			lmError = fmt.Errorf("cannot create lexmachine tokenizer: %w", lmError)
		}
	})
	return lmAdapter, lmError
}

func tokenizer(expression string, c *config) (scanner.Tokenizer, error) {
	if !c.lexmachine {
		return scanner.NewCursorTokenizer(expression), nil
	}
	lm, err := lexer()
	if err != nil {
		return nil, err
	}
	lmt, err := lm.Tokenizer(expression)
	if err != nil {
		return nil, err
	}
	return lmt, nil
}

// Parse parses an expression and returns its tree, without evaluating it.
// Option WithFold has no effect.
func Parse(expression string, opts ...Option) (ast.Node, error) {
	return parse(expression, makeConfig(opts))
}

func parse(expression string, c *config) (ast.Node, error) {
	scan, err := tokenizer(expression, c)
	if err != nil {
		return nil, err
	}
	p := parser.NewParser(ll.DefaultTable())
	return p.Parse(scan)
}

// ParseAndEvaluate parses an expression and computes its value.
// If the expression is not well-formed, the error is a *parser.SyntaxError.
//
// By default, operator chains associate to the right, following the grammar:
// "10/2/5" evaluates to 10/(2/5) = 25 and "1-2-3" to 1-(2-3) = 2. Use
// WithFold(ast.LeftFold) for conventional left associativity, where
// "10/2/5" = 1.
func ParseAndEvaluate(expression string, opts ...Option) (float64, error) {
	c := makeConfig(opts)
	tree, err := parse(expression, c)
	if err != nil {
		tracer().Infof("%q: %v", expression, err)
		return 0, err
	}
	v := ast.Evaluate(tree, c.fold)
	tracer().Debugf("%q = %g", expression, v)
	return v, nil
}
