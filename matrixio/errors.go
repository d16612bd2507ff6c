// SPDX-License-Identifier: MIT

package matrixio

import "errors"

var (
	// ErrNoFixtures indicates that a fixture directory holds no files.
	ErrNoFixtures = errors.New("matrixio: no fixture files")

	// ErrMalformed indicates a header or value line that cannot be parsed,
	// or a file whose row count or widths disagree with its header.
	ErrMalformed = errors.New("matrixio: malformed fixture")

	// ErrIncompleteCase indicates a random case missing its -A, -B or -C file.
	ErrIncompleteCase = errors.New("matrixio: incomplete test case")
)
