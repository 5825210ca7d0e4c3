// SPDX-License-Identifier: MIT

package graphio

import "errors"

var (
	// ErrUnknownFormat indicates a format name or file extension graphio cannot handle.
	ErrUnknownFormat = errors.New("graphio: unknown graph format")

	// ErrSyntax indicates malformed input; the wrapped message names the line or field.
	ErrSyntax = errors.New("graphio: syntax error")
)
