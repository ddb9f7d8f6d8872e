package parser

import (
	"errors"

	"github.com/npillmayer/llcalc"
	"github.com/npillmayer/llcalc/ast"
	"github.com/npillmayer/llcalc/ll"
	"github.com/npillmayer/llcalc/ll/scanner"
)

// Parser is an LL(1)-parser type. Create and initialize one with
// parser.NewParser(...). A parser may be used for more than one parse, but
// not concurrently.
type Parser struct {
	table *ll.Table
	stack *workStack
}

// NewParser creates an LL(1) parser driven by a transition table.
// If table is nil, the parser uses ll.DefaultTable().
func NewParser(table *ll.Table) *Parser {
	if table == nil {
		table = ll.DefaultTable()
	}
	return &Parser{table: table}
}

// Parse reads tokens from a tokenizer and returns the expression tree for
// them. If the input is not a valid expression, Parse returns a *SyntaxError
// for the first offending token and no tree.
func (p *Parser) Parse(scan scanner.Tokenizer) (ast.Node, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	if p.table == nil {
		tracer().Errorf("LL(1)-parser not initialized")
		return nil, errors.New("LL(1)-parser not initialized")
	}
	if scan == nil {
		return nil, errors.New("no tokenizer to read input from")
	}
	var root ast.Node
	p.stack = newWorkStack()
	p.stack.push(item{sym: ll.EOF})
	p.stack.push(item{sym: ll.E, slot: &root})
	for !p.stack.empty() {
		top, _ := p.stack.top()
		token := scan.Peek()
		la := ll.Terminal(token)
		tracer().Debugf("stack = %v, lookahead = %v", p.stack, token)
		if top.sym.IsTerminal() { // match or fail
			if top.sym != la {
				return nil, p.syntaxError(ExpectedTerminal, top.sym, token)
			}
			tracer().Debugf("match %v", top.sym)
			scan.Commit(token)
			p.stack.pop()
			if top.span != nil {
				*top.span = token.Span()
			}
			continue
		}
		prod, ok := p.table.SelectSymbol(top.sym, la)
		if !ok {
			return nil, p.syntaxError(ExpectedOperand, top.sym, token)
		}
		if top.sym == ll.F && la == ll.Number { // literal reduction
			tracer().Debugf("literal %s", token.Lexeme())
			scan.Commit(token)
			p.stack.pop()
			*top.slot = ast.NewLiteral(token)
			continue
		}
		tracer().Debugf("expand %v", prod)
		p.stack.pop()
		node, rhs := expand(prod)
		*top.slot = node
		p.stack.pushRHS(rhs)
	}
	tracer().Debugf("accept")
	return root, nil
}

func (p *Parser) syntaxError(kind ErrorKind, expected ll.Symbol, token llcalc.Token) error {
	err := &SyntaxError{
		Kind:     kind,
		Expected: expected,
		Offset:   token.Span().From(),
	}
	tracer().Infof("%v, found %v", err, token)
	return err
}

// expand creates the tree node for a production, together with the work
// items for its right hand side, in RHS order.
func expand(prod *ll.Production) (ast.Node, []item) {
	switch prod.LHS {
	case ll.E, ll.T: // E ➞ T A,  T ➞ F B
		n := &ast.BinaryOp{Sym: prod.LHS}
		return n, []item{
			{sym: prod.RHS[0], slot: &n.Left},
			{sym: prod.RHS[1], slot: &n.Right},
		}
	case ll.A, ll.B: // A ➞ + E | - E | ε,  B ➞ * T | / T | ε
		if prod.IsEpsilon() {
			return &ast.Empty{Sym: prod.LHS}, nil
		}
		return unary(prod)
	case ll.F:
		if prod.RHS[0] == ll.LParen { // F ➞ ( E )
			n := &ast.Paren{}
			return n, []item{
				{sym: ll.LParen, span: &n.Open},
				{sym: ll.E, slot: &n.Inner},
				{sym: ll.RParen, span: &n.Close},
			}
		}
		if len(prod.RHS) == 2 { // F ➞ + F | - F
			return unary(prod)
		} // F ➞ #num is handled by literal reduction
	}
	panic("cannot expand production " + prod.String())
}

func unary(prod *ll.Production) (ast.Node, []item) {
	n := &ast.UnaryOp{Sym: prod.LHS, Op: prod.RHS[0]}
	return n, []item{
		{sym: prod.RHS[0], span: &n.OpSpan},
		{sym: prod.RHS[1], slot: &n.Operand},
	}
}
