// SPDX-License-Identifier: MIT

package graphio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/mstforest/core"
	"github.com/katalvlaran/mstforest/ctxlog"
)

// Format names a graph file encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatTOML Format = "toml"
	FormatHCL  Format = "hcl"
)

var extensions = map[string]Format{
	".txt":   FormatText,
	".graph": FormatText,
	".toml":  FormatTOML,
	".hcl":   FormatHCL,
}

// ParseFormat maps a format name ("text", "toml", "hcl") to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatText, FormatTOML, FormatHCL:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath picks the Format from path's extension.
func FormatFromPath(path string) (Format, error) {
	if f, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return f, nil
	}

	return "", fmt.Errorf("%w: extension of %q", ErrUnknownFormat, path)
}

// Read decodes a Document in format f. name labels HCL diagnostics.
func Read(r io.Reader, f Format, name string) (*Document, error) {
	switch f {
	case FormatText:
		return ReadText(r)
	case FormatTOML:
		return ReadTOML(r)
	case FormatHCL:
		return ReadHCL(r, name)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Write encodes d in format f.
func Write(w io.Writer, d *Document, f Format) error {
	switch f {
	case FormatText:
		return WriteText(w, d)
	case FormatTOML:
		return WriteTOML(w, d)
	case FormatHCL:
		return WriteHCL(w, d)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Load reads the graph file at path. An empty f selects the format from the
// file extension. The logger in ctx receives a debug record per load.
func Load(ctx context.Context, path string, f Format) (*core.Graph, error) {
	logger := ctxlog.FromContext(ctx)

	var err error
	if f == "" {
		if f, err = FormatFromPath(path); err != nil {
			return nil, err
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer file.Close()

	doc, err := Read(file, f, path)
	if err != nil {
		return nil, fmt.Errorf("graphio: load %s: %w", path, err)
	}
	g, err := doc.Graph()
	if err != nil {
		return nil, fmt.Errorf("graphio: load %s: %w", path, err)
	}
	logger.Debug("Loaded graph file.", "path", path, "format", string(f),
		"vertices", g.VertexCount(), "edges", g.EdgeCount())

	return g, nil
}

// Save writes g to path in format f, or in the format implied by the
// extension when f is empty. The file is written only after encoding succeeds.
func Save(path string, g *core.Graph, f Format) error {
	var err error
	if f == "" {
		if f, err = FormatFromPath(path); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if err = Write(&buf, FromGraph(g), f); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("graphio: creating directory %s: %w", dir, err)
		}
	}
	if err = os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("graphio: writing %s: %w", path, err)
	}

	return nil
}
