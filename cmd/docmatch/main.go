package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/reoring/docmatch"
	"github.com/reoring/docmatch/document"
	"github.com/reoring/docmatch/match"
)

func main() {
	os.Exit(runWithArgs(os.Args[1:], os.Stdout, os.Stderr, isatty.IsTerminal(os.Stdout.Fd())))
}

const (
	colorGreen = "\x1b[32m"
	colorRed   = "\x1b[31m"
	colorReset = "\x1b[0m"
)

func runWithArgs(args []string, stdout, stderr io.Writer, color bool) int {
	fs := flag.NewFlagSet("docmatch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	schemaPath := fs.String("schema", "", "path to schema file (.json, .yaml, or .yml)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: docmatch -schema <schema.json|schema.yaml> <doc.json> [doc.json ...]\n\n")
		fmt.Fprintln(stderr, "Compiles the schema and reports whether each document matches it.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *schemaPath == "" {
		fmt.Fprintln(stderr, "error: -schema is required")
		fs.Usage()
		return 2
	}
	docs := fs.Args()
	if len(docs) == 0 {
		fmt.Fprintln(stderr, "error: at least one document file is required")
		fs.Usage()
		return 2
	}

	tree, err := compileSchemaFile(*schemaPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: compile %s: %v\n", *schemaPath, err)
		return 2
	}

	exit := 0
	for _, path := range docs {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 2
		}
		doc, err := document.DecodeJSON(data)
		if err != nil {
			fmt.Fprintf(stderr, "error: decode %s: %v\n", path, err)
			return 2
		}
		if tree.Matches(doc) {
			fmt.Fprintf(stdout, "%s %s\n", paint("ok", colorGreen, color), path)
		} else {
			fmt.Fprintf(stdout, "%s %s\n", paint("FAIL", colorRed, color), path)
			exit = 1
		}
	}
	return exit
}

func compileSchemaFile(path string) (match.Matcher, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return docmatch.CompileYAML(data)
	}
	return docmatch.CompileJSON(data)
}

func paint(s, color string, enabled bool) string {
	if !enabled {
		return s
	}
	return color + s + colorReset
}
