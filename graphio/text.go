// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const textComment = "#"

// ReadText decodes the line-oriented text format.
//
// Error Conditions:
//   - ErrSyntax: missing or negative vertex count, fewer names than declared,
//     a vertex name containing whitespace, an edge line without exactly three
//     fields, an unparsable weight, or any Validate failure.
func ReadText(r io.Reader) (*Document, error) {
	sc := bufio.NewScanner(r)
	d := &Document{}
	count := -1
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, textComment) {
			continue
		}

		switch {
		case count < 0:
			n, err := strconv.Atoi(line)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: line %d: vertex count %q", ErrSyntax, lineNo, line)
			}
			count = n
			d.Vertices = make([]string, 0, n)

		case len(d.Vertices) < count:
			if strings.ContainsAny(line, " \t") {
				return nil, fmt.Errorf("%w: line %d: vertex name %q contains whitespace", ErrSyntax, lineNo, line)
			}
			d.Vertices = append(d.Vertices, line)

		default:
			fields := strings.Fields(line)
			if len(fields) != 3 {
				return nil, fmt.Errorf("%w: line %d: want \"from to weight\", got %q", ErrSyntax, lineNo, line)
			}
			w, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: weight %q", ErrSyntax, lineNo, fields[2])
			}
			d.Edges = append(d.Edges, EdgeRecord{From: fields[0], To: fields[1], Weight: w})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read text: %w", err)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: missing vertex count", ErrSyntax)
	}
	if len(d.Vertices) < count {
		return nil, fmt.Errorf("%w: declared %d vertices, found %d", ErrSyntax, count, len(d.Vertices))
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return d, nil
}

// WriteText encodes d in the text format. Vertex names containing
// whitespace cannot be represented and yield ErrSyntax.
func WriteText(w io.Writer, d *Document) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(d.Vertices))
	for _, v := range d.Vertices {
		if v == "" || strings.ContainsAny(v, " \t\r\n") {
			return fmt.Errorf("%w: vertex name %q is not representable in text format", ErrSyntax, v)
		}
		fmt.Fprintln(bw, v)
	}
	for _, e := range d.Edges {
		fmt.Fprintf(bw, "%s %s %s\n", e.From, e.To, strconv.FormatFloat(e.Weight, 'g', -1, 64))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("graphio: write text: %w", err)
	}

	return nil
}
