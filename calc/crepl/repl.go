package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/llcalc/ast"
	"github.com/npillmayer/llcalc/calc"
	"github.com/npillmayer/llcalc/ll"
	"github.com/npillmayer/llcalc/ll/parser"
)

// main() starts an interactive CLI ("C.REPL"), where users may enter
// arithmetic expressions. C.REPL will evaluate each expression and print
// out the result.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	scan := flag.String("scanner", "cursor", "Tokenizer [cursor|lexmachine]")
	fold := flag.String("fold", "right", "Associativity of operator chains [right|left]")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to C.REPL")   // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	setTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	ll.Dump()                          // only visible in debug mode
	//
	intp := &Intp{}
	if err := intp.configure(*scan, *fold); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		intp.Eval(input)
	}
	//
	// set up REPL
	repl, err := readline.New("llcalc> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	//
	// load an init file and start receiving expressions
	tracer().Infof("Quit with <ctrl>D or \"quit\"") // inform user how to stop the CLI
	intp.loadInitFile(*initf)                       // init file name provided by flag
	intp.REPL()                                     // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  =",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	fold ast.Fold
	opts []calc.Option
	repl *readline.Instance
}

// configure sets up the evaluation options from command line flags.
func (intp *Intp) configure(scan, fold string) error {
	switch strings.ToLower(scan) {
	case "cursor":
	case "lexmachine":
		intp.opts = append(intp.opts, calc.WithLexmachine())
	default:
		return fmt.Errorf("unknown scanner %q, expected cursor or lexmachine", scan)
	}
	switch strings.ToLower(fold) {
	case "right":
		intp.fold = ast.RightFold
	case "left":
		intp.fold = ast.LeftFold
	default:
		return fmt.Errorf("unknown fold %q, expected right or left", fold)
	}
	intp.opts = append(intp.opts, calc.WithFold(intp.fold))
	tracer().Infof("Using %s scanner, %s fold", scan, intp.fold)
	return nil
}

// loadInitFile evaluates every non-empty line of a file. It returns the
// number of lines evaluated and the line numbers of lines in error.
func (intp *Intp) loadInitFile(filename string) (int, []int) {
	if filename == "" {
		return 0, nil
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return 0, nil
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno, count := 0, 0
	var failed []int
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		count++
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
			failed = append(failed, lineno)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
	return count, failed
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, _ := intp.Eval(line)
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval evaluates a command or an arithmetic expression, given on a line by
// itself. It returns true if the user wants to quit.
func (intp *Intp) Eval(line string) (bool, error) {
	switch {
	case line == "quit":
		return true, nil
	case line == "table":
		intp.printTable()
		return false, nil
	case strings.HasPrefix(line, "tree "):
		return false, intp.printTree(strings.TrimSpace(strings.TrimPrefix(line, "tree ")))
	}
	v, err := calc.ParseAndEvaluate(line, intp.opts...)
	if err != nil {
		intp.printError(line, err)
		return false, err
	}
	pterm.Info.Println(formatValue(v))
	return false, nil
}

// printTree displays the expression tree of an expression, each node
// labeled with its value.
func (intp *Intp) printTree(expr string) error {
	tree, err := calc.Parse(expr, intp.opts...)
	if err != nil {
		intp.printError(expr, err)
		return err
	}
	v := ast.Evaluate(tree, ast.RightFold) // annotates the nodes
	if intp.fold != ast.RightFold {
		v = ast.Evaluate(tree, intp.fold)
	}
	pterm.Println(ast.String(tree))
	root := pterm.NewTreeFromLeveledList(leveledTree(tree))
	pterm.DefaultTree.WithRoot(root).Render()
	pterm.Info.Println(formatValue(v))
	return nil
}

func leveledTree(tree ast.Node) pterm.LeveledList {
	var list pterm.LeveledList
	ast.Walk(tree, func(n ast.Node, level int) {
		list = append(list, pterm.LeveledListItem{
			Level: level,
			Text:  ast.Label(n),
		})
	})
	tracer().Debugf("|ll| = %d", len(list))
	return list
}

// printTable displays the LL(1) transition table, one row per defined cell.
func (intp *Intp) printTable() {
	data := transitionRows(ll.DefaultTable())
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func transitionRows(table *ll.Table) pterm.TableData {
	data := pterm.TableData{{"N", "lookahead", "production"}}
	table.Each(func(N, la ll.Symbol, p *ll.Production) {
		data = append(data, []string{N.String(), la.String(),
			fmt.Sprintf("%2d: %v", p.Serial, p)})
	})
	return data
}

// printError reports an error. For syntax errors, a marker points to the
// offending position of the input.
func (intp *Intp) printError(input string, err error) {
	var serr *parser.SyntaxError
	if !errors.As(err, &serr) {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Error.Printf("%s at position %d\n", serr.Reason(), serr.Offset)
	pterm.Println("    " + input)
	pterm.Println("    " + caret(input, serr.Offset))
}

// caret returns a marker line pointing to a byte offset of input. Tabs are
// kept, so the marker lines up with the input when both are printed.
func caret(input string, offset uint64) string {
	var b strings.Builder
	for i, r := range input {
		if uint64(i) >= offset {
			break
		}
		if r == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteRune(' ')
		}
	}
	b.WriteString("^")
	return b.String()
}

func formatValue(v float64) string {
	return fmt.Sprintf("%g", v)
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range []string{"llcalc.scanner", "llcalc.ll", "llcalc.parser",
		"llcalc.ast", "llcalc.calc"} {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
