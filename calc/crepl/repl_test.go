package main

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/npillmayer/llcalc/ast"
	"github.com/npillmayer/llcalc/calc"
	"github.com/npillmayer/llcalc/ll"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestConfigure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.calc")
	defer teardown()
	//
	intp := &Intp{}
	if err := intp.configure("lexmachine", "left"); err != nil {
		t.Fatal(err)
	}
	if intp.fold != ast.LeftFold || len(intp.opts) != 2 {
		t.Errorf("expected left fold with lexmachine, have %v and %d options", intp.fold, len(intp.opts))
	}
	if err := (&Intp{}).configure("regexp", "right"); err == nil {
		t.Errorf("expected unknown scanner to be rejected")
	}
	if err := (&Intp{}).configure("cursor", "middle"); err == nil {
		t.Errorf("expected unknown fold to be rejected")
	}
}

func TestEvalCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.calc")
	defer teardown()
	//
	intp := &Intp{}
	if quit, err := intp.Eval("quit"); !quit || err != nil {
		t.Errorf("expected quit to end the REPL")
	}
	if quit, err := intp.Eval("2*(3+4)"); quit || err != nil {
		t.Errorf("expected expression to evaluate, got %v", err)
	}
	if _, err := intp.Eval("2*(3+4"); err == nil {
		t.Errorf("expected syntax error for missing parenthesis")
	}
	if _, err := intp.Eval("tree 1-2-3"); err != nil {
		t.Errorf("expected tree to be displayed, got %v", err)
	}
}

func TestLeveledTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.calc")
	defer teardown()
	//
	tree, err := calc.Parse("-1")
	if err != nil {
		t.Fatal(err)
	}
	ast.Evaluate(tree, ast.RightFold)
	list := leveledTree(tree)
	// E, T, F(-), #num, B ε, A ε
	levels := []int{0, 1, 2, 3, 2, 1}
	if len(list) != len(levels) {
		t.Fatalf("expected %d tree items, have %d", len(levels), len(list))
	}
	for i, item := range list {
		if item.Level != levels[i] {
			t.Errorf("expected %q at level %d, is at %d", item.Text, levels[i], item.Level)
		}
	}
	if list[0].Text != "E  = -1" {
		t.Errorf("expected root label \"E  = -1\", is %q", list[0].Text)
	}
}

func TestLoadInitFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.calc")
	defer teardown()
	//
	content := "1+2\n\n   \n(3*4\n10/2/5\n2+\n"
	filename := filepath.Join(t.TempDir(), "init.calc")
	if err := ioutil.WriteFile(filename, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	intp := &Intp{}
	count, failed := intp.loadInitFile(filename)
	if count != 4 {
		t.Errorf("expected 4 non-empty lines to be evaluated, have %d", count)
	}
	if len(failed) != 2 || failed[0] != 4 || failed[1] != 6 {
		t.Errorf("expected errors in lines 4 and 6, have %v", failed)
	}
	if count, _ := intp.loadInitFile(filepath.Join(t.TempDir(), "missing")); count != 0 {
		t.Errorf("expected missing init file to evaluate nothing")
	}
}

func TestCaret(t *testing.T) {
	for _, test := range []struct {
		input  string
		offset uint64
		marker string
	}{
		{"(2+3", 4, "    ^"},
		{"2+", 2, "  ^"},
		{"()", 1, " ^"},
		{"\t2 )", 3, "\t  ^"},
		{"é+", 3, "  ^"},
	} {
		if m := caret(test.input, test.offset); m != test.marker {
			t.Errorf("%q at %d: expected marker %q, have %q", test.input, test.offset, test.marker, m)
		}
	}
}

func TestTransitionRows(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llcalc.calc")
	defer teardown()
	//
	table := ll.DefaultTable()
	rows := transitionRows(table)
	if len(rows) != table.Size()+1 {
		t.Fatalf("expected header and %d rows, have %d rows", table.Size(), len(rows))
	}
	if rows[0][0] != "N" {
		t.Errorf("expected header row first, have %v", rows[0])
	}
	found := false
	for _, row := range rows[1:] {
		if row[0] == "F" && row[1] == "(" {
			found = row[2] == "12: F ➞ ( E )"
		}
	}
	if !found {
		t.Errorf("expected row (F, '(') to select production 12")
	}
}
