package ll

import (
	"fmt"
	"io"
	"sync"

	"github.com/npillmayer/llcalc"
	"github.com/npillmayer/llcalc/ll/sparse"
)

// Table is an LL(1) transition table. For a pair of a non-terminal and a
// lookahead terminal it holds the serial of the production to expand, if any.
//
// Rows are non-terminals, columns are terminals.
type Table struct {
	matrix *sparse.IntMatrix
}

// Transition is a single entry of a transition table: non-terminal N is to
// be expanded with production Serial if the lookahead is LA.
type Transition struct {
	N, LA  Symbol
	Serial int
}

// transitions is the complete list of defined table cells.
// Every pair not listed is a syntax error.
var transitions = []Transition{
	// number: only E, T and F start with a number
	{E, Number, 1}, {T, Number, 5}, {F, Number, 11},
	// '+' is binary for A, unary for F
	{E, Plus, 1}, {A, Plus, 2}, {T, Plus, 5}, {B, Plus, 8}, {F, Plus, 9},
	// '-' is binary for A, unary for F
	{E, Minus, 1}, {A, Minus, 3}, {T, Minus, 5}, {B, Minus, 8}, {F, Minus, 10},
	{B, Times, 6},
	{B, Divide, 7},
	{E, LParen, 1}, {T, LParen, 5}, {F, LParen, 12},
	// expressions and terms may end at ')' or at the end of input
	{A, RParen, 4}, {B, RParen, 8},
	{A, EOF, 4}, {B, EOF, 8},
}

// NewTable creates a transition table from a list of transitions.
// It is an error to have more than one production for a cell, i.e. for
// the grammar not to be LL(1).
func NewTable(entries []Transition) (*Table, error) {
	rows := int(firstTerm - firstNonTerm)
	cols := int(lastTerm - firstTerm + 1)
	tracer().Infof("transition table of size %d x %d", rows, cols)
	table := &Table{
		matrix: sparse.NewIntMatrix(rows, cols, sparse.DefaultNullValue),
	}
	var err error
	for _, t := range entries {
		if !t.N.IsNonTerminal() || !t.LA.IsTerminal() {
			return nil, fmt.Errorf("illegal table entry (%v,%v)", t.N, t.LA)
		}
		p := Rule(t.Serial)
		if p == nil || p.LHS != t.N {
			return nil, fmt.Errorf("table entry (%v,%v): %d is not a production for %v",
				t.N, t.LA, t.Serial, t.N)
		}
		i, j := table.index(t.N, t.LA)
		if occupied := table.matrix.Add(i, j, int32(t.Serial)); occupied {
			a, _ := table.matrix.Values(i, j)
			tracer().Errorf("conflict at (%v,%v): %d/%d", t.N, t.LA, a, t.Serial)
			if err == nil {
				err = fmt.Errorf("grammar is not LL(1): conflict at (%v,%v) between [%v] and [%v]",
					t.N, t.LA, Rule(int(a)), p)
			}
		}
	}
	return table, err
}

var defaultTable *Table
var tableOnce sync.Once

// DefaultTable returns the transition table for the expression grammar.
// The table is created once and is read-only.
func DefaultTable() *Table {
	tableOnce.Do(func() {
		var err error
		if defaultTable, err = NewTable(transitions); err != nil {
			panic(err)
		}
		Dump()
	})
	return defaultTable
}

// Transitions returns a copy of the transitions the default table is built from.
func Transitions() []Transition {
	return append([]Transition(nil), transitions...)
}

func (t *Table) index(N, la Symbol) (int, int) {
	return int(N - firstNonTerm), int(la - firstTerm)
}

// Select returns the production to expand for non-terminal N with a lookahead
// token, or false if there is none. For terminals N, or tokens not
// representing a terminal, Select returns false.
func (t *Table) Select(N Symbol, token llcalc.Token) (*Production, bool) {
	return t.SelectSymbol(N, Terminal(token))
}

// SelectSymbol returns the production to expand for non-terminal N with a
// lookahead terminal la, or false if there is none.
func (t *Table) SelectSymbol(N Symbol, la Symbol) (*Production, bool) {
	if !N.IsNonTerminal() || !la.IsTerminal() {
		return nil, false
	}
	v := t.matrix.Value(t.index(N, la))
	if v == t.matrix.NullValue() {
		return nil, false
	}
	return Rule(int(v)), true
}

// Size returns the number of defined cells.
func (t *Table) Size() int {
	return t.matrix.ValueCount()
}

// Each calls f for every defined cell, row by row.
func (t *Table) Each(f func(N, la Symbol, p *Production)) {
	t.matrix.Each(func(i, j int, a, b int32) {
		f(firstNonTerm+Symbol(i), firstTerm+Symbol(j), Rule(int(a)))
	})
}

// Cells returns the table as a grid of strings, with a header row of
// terminals and a first column of non-terminals. Empty cells are "".
func (t *Table) Cells() [][]string {
	grid := make([][]string, 0, t.matrix.M()+1)
	header := []string{""}
	for la := firstTerm; la <= lastTerm; la++ {
		header = append(header, la.String())
	}
	grid = append(grid, header)
	for N := firstNonTerm; N < firstTerm; N++ {
		row := []string{N.String()}
		for la := firstTerm; la <= lastTerm; la++ {
			cell := ""
			if p, ok := t.SelectSymbol(N, la); ok {
				cell = fmt.Sprintf("%d", p.Serial)
			}
			row = append(row, cell)
		}
		grid = append(grid, row)
	}
	return grid
}

// AsHTML exports the transition table in HTML-format.
func (t *Table) AsHTML(w io.Writer) error {
	if _, err := io.WriteString(w, "<html><body>\n"); err != nil {
		return err
	}
	fmt.Fprintf(w, "LL(1) table with %d entries<p>\n", t.Size())
	io.WriteString(w, "<table border=1 cellspacing=0 cellpadding=5>\n")
	for i, row := range t.Cells() {
		if i == 0 {
			io.WriteString(w, "<tr bgcolor=#cccccc>")
		} else {
			io.WriteString(w, "<tr>")
		}
		for _, cell := range row {
			if cell == "" {
				cell = "&nbsp;"
			}
			fmt.Fprintf(w, "<td>%s</td>", cell)
		}
		io.WriteString(w, "</tr>\n")
	}
	io.WriteString(w, "</table><p>\n")
	for _, p := range Rules() {
		fmt.Fprintf(w, "%d: %s<br>\n", p.Serial, p)
	}
	_, err := io.WriteString(w, "</body></html>\n")
	return err
}
