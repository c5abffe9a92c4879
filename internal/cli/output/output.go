// Package output renders CLI results as text tables, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// Format selects how results are written.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the accepted --output values.
var Formats = []string{string(FormatText), string(FormatJSON), string(FormatYAML)}

// ParseFormat validates an --output value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown output format %q (want one of %s)", s, strings.Join(Formats, ", "))
}

// Result is a list of records sharing one header.
type Result struct {
	Header []string
	Rows   [][]string
}

// keys returns the header as JSON/YAML field names: "MAX LENGTH" -> "max_length".
func (r Result) keys() []string {
	out := make([]string, len(r.Header))
	for i, h := range r.Header {
		out[i] = strings.ReplaceAll(strings.ToLower(h), " ", "_")
	}
	return out
}

// Render writes r to w in format f.
func Render(w io.Writer, f Format, r Result) error {
	switch f {
	case FormatJSON:
		return renderJSON(w, r)
	case FormatYAML:
		return renderYAML(w, r)
	default:
		return renderTable(w, r)
	}
}

func renderTable(w io.Writer, r Result) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(r.Header))
	for i, h := range r.Header {
		header[i] = h
	}
	t.AppendHeader(header)

	for _, rec := range r.Rows {
		row := make(table.Row, len(rec))
		for i, v := range rec {
			row[i] = v
		}
		t.AppendRow(row)
	}

	t.Render()
	return nil
}

func renderJSON(w io.Writer, r Result) error {
	keys := r.keys()
	records := make([]map[string]string, len(r.Rows))
	for i, rec := range r.Rows {
		m := make(map[string]string, len(keys))
		for j, k := range keys {
			m[k] = rec[j]
		}
		records[i] = m
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// renderYAML builds the document node by node so fields keep header order.
func renderYAML(w io.Writer, r Result) error {
	keys := r.keys()
	doc := &yaml.Node{Kind: yaml.SequenceNode}
	for _, rec := range r.Rows {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for j, k := range keys {
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: rec[j]},
			)
		}
		doc.Content = append(doc.Content, m)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
