// SPDX-License-Identifier: MIT

package graphio

import (
	"errors"
	"fmt"
	"io"

	toml "github.com/pelletier/go-toml/v2"
)

// ReadTOML decodes a TOML graph document. Unknown keys are rejected.
func ReadTOML(r io.Reader) (*Document, error) {
	var d Document
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%w: toml %d:%d: %s", ErrSyntax, row, col, derr.Error())
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return nil, fmt.Errorf("%w: toml: %s", ErrSyntax, serr.String())
		}

		return nil, fmt.Errorf("%w: toml: %v", ErrSyntax, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// WriteTOML encodes d as TOML.
func WriteTOML(w io.Writer, d *Document) error {
	if err := toml.NewEncoder(w).Encode(d); err != nil {
		return fmt.Errorf("graphio: write toml: %w", err)
	}

	return nil
}
