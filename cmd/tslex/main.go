// Command tslex prints the tokens of ECMAScript/TypeScript source files.
//
// Usage:
//
//	tslex [flags] [file ...]
//
// Each file, or the standard input if no file is given, is scanned and every
// token is printed to the standard output as
//
//	name:line:col	Kind	"text"
//
// Lexing errors are reported to the standard error. The exit status is 1 if
// any lexing error occurred and 2 on usage or I/O errors.
//
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/db47h/tslex"
	"github.com/db47h/tslex/scanner"
	"github.com/db47h/tslex/token"
)

const (
	appName     = "tslex"
	historyFile = ".tslex_history"
	prompt      = "tslex> "
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, appName+": ", 0)

	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s [flags] [file ...]\n", appName)
		fs.PrintDefaults()
	}
	repl := fs.Bool("repl", false, "read source lines interactively")
	noComments := fs.Bool("no-comments", false, "do not print comment tokens")
	excerpt := fs.Bool("excerpt", false, "print the offending source line with errors")
	color := fs.Bool("color", false, "colorize output")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	p := newPrinter(stdout, stderr, *color)
	p.excerpt = *excerpt
	if *noComments {
		p.opts = append(p.opts, scanner.SkipComments())
	}

	if *repl {
		if fs.NArg() > 0 {
			fs.Usage()
			return 2
		}
		if err := p.repl(); err != nil {
			logger.Print(err)
			return 2
		}
		return 0
	}

	status := 0
	if fs.NArg() == 0 {
		src, err := io.ReadAll(stdin)
		if err != nil {
			logger.Printf("reading standard input: %v", err)
			return 2
		}
		if p.scan("<stdin>", src) {
			status = 1
		}
		return status
	}
	for _, name := range fs.Args() {
		src, err := os.ReadFile(name)
		if err != nil {
			logger.Print(err)
			return 2
		}
		if p.scan(name, src) {
			status = 1
		}
	}
	return status
}

type printer struct {
	out     io.Writer
	errs    io.Writer
	opts    []scanner.Option
	excerpt bool
	color   bool
	pos     lipgloss.Style
	kind    lipgloss.Style
	text    lipgloss.Style
	err     lipgloss.Style
}

func newPrinter(out, errs io.Writer, color bool) *printer {
	r := lipgloss.NewRenderer(out)
	return &printer{
		out:   out,
		errs:  errs,
		color: color,
		pos:   r.NewStyle().Faint(true),
		kind:  r.NewStyle().Foreground(lipgloss.Color("12")),
		text:  r.NewStyle().Foreground(lipgloss.Color("10")),
		err:   lipgloss.NewRenderer(errs).NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

func (p *printer) style(s lipgloss.Style, str string) string {
	if !p.color {
		return str
	}
	return s.Render(str)
}

// scan prints the tokens of src and reports whether any error occurred.
//
func (p *printer) scan(name string, src []byte) (failed bool) {
	f := token.NewFile(name, src)
	opts := append(p.opts[:len(p.opts):len(p.opts)], scanner.ErrorHandler(func(err *tslex.Error) {
		failed = true
		p.report(f, err)
	}))
	for t, err := range scanner.New(f, opts...).All() {
		if err != nil {
			continue
		}
		fmt.Fprintf(p.out, "%s\t%s\t%s\n",
			p.style(p.pos, f.Position(t.Start).String()),
			p.style(p.kind, t.Kind.String()),
			p.style(p.text, strconv.Quote(string(t.Text(src)))))
	}
	return failed
}

func (p *printer) report(f *token.File, err *tslex.Error) {
	switch {
	case p.excerpt:
		tslex.PrintExcerpt(p.errs, f, err)
	case p.color:
		fmt.Fprintln(p.errs, p.style(p.err, err.Error()))
	default:
		err.Report(p.errs)
	}
}

// repl scans lines read from the terminal, each line on its own.
//
func (p *printer) repl() error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	var histPath string
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			break
		}
		if err != nil {
			return fmt.Errorf("reading line: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		p.scan("<repl>", []byte(line))
		ln.AppendHistory(line)
	}

	if histPath == "" {
		return nil
	}
	f, err := os.Create(histPath)
	if err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	defer f.Close()
	if _, err := ln.WriteHistory(f); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	return nil
}
