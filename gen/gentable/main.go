// Command gentable regenerates kana_table_gen.go, the named overrides that
// kana.go applies over its classification table, from kana_table.yaml. It is adapted from the upstream code generator's
// yaml.v2 + text/template shape: a small config describing named entries,
// expanded into a Go source file committed alongside the hand-written
// package sources.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"text/template"

	"gopkg.in/yaml.v2"
)

type entry struct {
	Code   int    `yaml:"code"`
	Name   string `yaml:"name"`
	Column string `yaml:"column"`
	Rime   string `yaml:"rime"`
}

type config struct {
	Entries []entry `yaml:"entries"`
}

var columnValue = map[string]int{
	"none": 0, "a": 1, "i": 2, "u": 3, "e": 4, "o": 5, "n": 8,
}

const tmplSrc = `// Code generated by gen/gentable from kana_table.yaml. DO NOT EDIT.
package morastr

// generatedOverrides are the explicitly named overrides from
// kana_table.yaml, applied on top of the plain gojūon grid in
// kanaTableBase's init().
var generatedOverrides = map[rune]byte{
{{- range .Entries }}
	0x{{ printf "%X" .Code }}: {{ .Packed }}, // {{ .Name }}
{{- end }}
}
`

func pack(columnName, rimeName string) byte {
	col := columnValue[columnName]
	rime := columnValue[rimeName]
	return byte(col) | byte(rime)<<5
}

func main() {
	in := flag.String("in", "kana_table.yaml", "source YAML")
	out := flag.String("out", "", "output Go file (stdout if empty)")
	flag.Parse()

	data, err := os.ReadFile(*in)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	type rendered struct {
		Code   int
		Name   string
		Packed byte
	}
	view := struct{ Entries []rendered }{}
	for _, e := range cfg.Entries {
		view.Entries = append(view.Entries, rendered{
			Code:   e.Code,
			Name:   e.Name,
			Packed: pack(e.Column, e.Rime),
		})
	}

	tmpl := template.Must(template.New("table").Parse(tmplSrc))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *out == "" {
		os.Stdout.Write(formatted)
		return
	}
	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
