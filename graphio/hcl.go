// SPDX-License-Identifier: MIT

package graphio

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// hclGraphFile is the top-level structure of an HCL graph file.
type hclGraphFile struct {
	Vertices []hclVertex `hcl:"vertex,block"`
	Edges    []hclEdge   `hcl:"edge,block"`
}

type hclVertex struct {
	Name string `hcl:"name,label"`
}

type hclEdge struct {
	From   string  `hcl:"from"`
	To     string  `hcl:"to"`
	Weight float64 `hcl:"weight"`
}

// ReadHCL decodes an HCL graph document. filename only labels diagnostics.
func ReadHCL(r io.Reader, filename string) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("graphio: read hcl: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrSyntax, diags.Error())
	}

	var parsed hclGraphFile
	if diags = gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrSyntax, diags.Error())
	}

	d := &Document{Vertices: make([]string, 0, len(parsed.Vertices))}
	for _, v := range parsed.Vertices {
		d.Vertices = append(d.Vertices, v.Name)
	}
	for _, e := range parsed.Edges {
		d.Edges = append(d.Edges, EdgeRecord(e))
	}
	if err = d.Validate(); err != nil {
		return nil, err
	}

	return d, nil
}

// WriteHCL encodes d as HCL blocks.
func WriteHCL(w io.Writer, d *Document) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	for _, v := range d.Vertices {
		body.AppendNewBlock("vertex", []string{v})
	}
	for _, e := range d.Edges {
		body.AppendNewline()
		eb := body.AppendNewBlock("edge", nil).Body()
		eb.SetAttributeValue("from", cty.StringVal(e.From))
		eb.SetAttributeValue("to", cty.StringVal(e.To))
		eb.SetAttributeValue("weight", cty.NumberFloatVal(e.Weight))
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("graphio: write hcl: %w", err)
	}

	return nil
}
