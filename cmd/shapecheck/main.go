package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gojson "github.com/goccy/go-json"

	shapecheck "github.com/shapecheck/shapecheck"
	"github.com/shapecheck/shapecheck/i18n"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "check":
		checkCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "shapecheck CLI\n\nUsage:\n  shapecheck check -schema schema.json -in doc.json [-coerce] [-lang en|ja]\n\nNotes:\n  - Schema and input may be JSON or YAML, chosen by file extension.\n  - Exit code is 1 when the document does not conform, 2 on usage or load errors.")
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var schemaPath string
	var inPath string
	var printCoerced bool
	var lang string
	fs.StringVar(&schemaPath, "schema", "", "schema description file (JSON or YAML)")
	fs.StringVar(&inPath, "in", "", "input document file (JSON or YAML)")
	fs.BoolVar(&printCoerced, "coerce", false, "print the coerced document as JSON on success")
	fs.StringVar(&lang, "lang", "en", "diagnostic language (en/ja)")
	_ = fs.Parse(args)
	if schemaPath == "" || inPath == "" {
		fs.Usage()
		os.Exit(2)
	}
	i18n.SetLanguage(lang)

	schemaDoc, err := loadFile(schemaPath)
	if err != nil {
		fatalf("loading schema: %v", err)
	}
	checker, err := shapecheck.FromDescription(schemaDoc)
	if err != nil {
		fatalf("building checker: %v", err)
	}
	doc, err := loadFile(inPath)
	if err != nil {
		fatalf("loading input: %v", err)
	}

	st := shapecheck.NewStatus()
	out, err := checker.Validate(context.Background(), doc, st)
	if err != nil {
		fatalf("checking: %v", err)
	}
	if st.Failed() {
		for _, is := range shapecheck.IssuesFrom(st) {
			fmt.Fprintf(os.Stderr, "%s: %s\n", is.Path, is.Message)
		}
		os.Exit(1)
	}
	if printCoerced {
		b, err := gojson.MarshalIndent(out, "", "  ")
		if err != nil {
			fatalf("encoding result: %v", err)
		}
		fmt.Println(string(b))
	}
}

// loadFile reads and decodes a JSON or YAML document, picking the decoder by
// file extension (.yaml/.yml means YAML, everything else JSON).
func loadFile(path string) (any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return shapecheck.DecodeYAML(b)
	default:
		return shapecheck.DecodeJSON(b)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(2)
}
