// SPDX-License-Identifier: MIT
// Package matrixio: multiplication test cases.
//
// A fixture directory mixes two kinds of files:
//   - square_NN: one file holding A, B and C = A×B, each NxN.
//   - rand_RRxCC-A, -B, -C: three files holding A (RxC), B (CxR) and C = A×B.

package matrixio

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/katalvlaran/densemat/numeric"
)

const (
	squarePrefix = "square"
	randomPrefix = "rand"
	operandsPer  = 3
)

// Case is one multiplication fixture: C is the expected A×B.
type Case[T numeric.Number] struct {
	Name    string
	A, B, C *matrix.Dense[T]
}

// RandomGroup names the three files of one random-size case.
type RandomGroup struct {
	Name    string
	A, B, C FilePath
}

// ReadSquareCase reads a square_* file: an "NxN" header followed by 3N rows.
func ReadSquareCase[T numeric.Number](path string) (Case[T], error) {
	lines, err := ReadLines(path)
	if err != nil {
		return Case[T]{}, err
	}
	if len(lines) == 0 {
		return Case[T]{}, fmt.Errorf("ReadSquareCase(%q): %w: empty file", path, ErrMalformed)
	}
	n, cols, err := ParseHeader(lines[0])
	if err != nil {
		return Case[T]{}, fmt.Errorf("ReadSquareCase(%q): %w", path, err)
	}
	if n != cols {
		return Case[T]{}, fmt.Errorf("ReadSquareCase(%q): %w: %dx%d is not square", path, ErrMalformed, n, cols)
	}
	body := dataLines(lines[1:])
	if len(body) != operandsPer*n {
		return Case[T]{}, fmt.Errorf("ReadSquareCase(%q): %w: %d rows, want %d", path, ErrMalformed, len(body), operandsPer*n)
	}

	var ms [operandsPer]*matrix.Dense[T]
	for k := range ms {
		if ms[k], err = parseBlock[T](body[k*n:(k+1)*n], n, n); err != nil {
			return Case[T]{}, fmt.Errorf("ReadSquareCase(%q): block %d: %w", path, k, err)
		}
	}

	return Case[T]{Name: filepath.Base(path), A: ms[0], B: ms[1], C: ms[2]}, nil
}

// GroupRandomCases collects rand_* files into complete -A/-B/-C groups,
// ordered by case name. Files of other kinds are ignored. A group missing a
// member is an error, never silently skipped.
func GroupRandomCases(files []FilePath) ([]RandomGroup, error) {
	byName := make(map[string]*RandomGroup)
	var order []string
	for _, f := range files {
		if !strings.HasPrefix(f.Name, randomPrefix) {
			continue
		}
		cut := strings.LastIndexByte(f.Name, '-')
		if cut < 0 || cut != len(f.Name)-2 {
			return nil, fmt.Errorf("GroupRandomCases: %w: %q lacks -A/-B/-C suffix", ErrMalformed, f.Name)
		}
		name := f.Name[:cut]
		g, ok := byName[name]
		if !ok {
			g = &RandomGroup{Name: name}
			byName[name] = g
			order = append(order, name)
		}
		switch f.Name[cut+1] {
		case 'A':
			g.A = f
		case 'B':
			g.B = f
		case 'C':
			g.C = f
		default:
			return nil, fmt.Errorf("GroupRandomCases: %w: %q lacks -A/-B/-C suffix", ErrMalformed, f.Name)
		}
	}

	groups := make([]RandomGroup, 0, len(order))
	for _, name := range order {
		g := byName[name]
		if g.A.Name == "" || g.B.Name == "" || g.C.Name == "" {
			return nil, fmt.Errorf("GroupRandomCases: %w: %s", ErrIncompleteCase, name)
		}
		groups = append(groups, *g)
	}

	return groups, nil
}

// ReadRandomCase reads the three files of g.
func ReadRandomCase[T numeric.Number](g RandomGroup) (Case[T], error) {
	var ms [operandsPer]*matrix.Dense[T]
	var err error
	for k, f := range [operandsPer]FilePath{g.A, g.B, g.C} {
		if ms[k], err = ReadMatrix[T](f.Full()); err != nil {
			return Case[T]{}, err
		}
	}

	return Case[T]{Name: g.Name, A: ms[0], B: ms[1], C: ms[2]}, nil
}

// LoadCases reads every square and random case of dir concurrently, at most
// GOMAXPROCS files at a time. Results keep file-name order. The first failure
// cancels the remaining reads and is returned.
//
// Errors:
//   - ErrNoFixtures when dir holds no files; read/parse errors otherwise.
func LoadCases[T numeric.Number](ctx context.Context, dir string) (square, random []Case[T], err error) {
	files, err := FilesInDirectory(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return nil, nil, fmt.Errorf("LoadCases(%q): %w", dir, ErrNoFixtures)
	}

	var squareFiles []FilePath
	for _, f := range files {
		if strings.HasPrefix(f.Name, squarePrefix) {
			squareFiles = append(squareFiles, f)
		}
	}
	groups, err := GroupRandomCases(files)
	if err != nil {
		return nil, nil, err
	}

	square = make([]Case[T], len(squareFiles))
	random = make([]Case[T], len(groups))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, f := range squareFiles {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := ReadSquareCase[T](f.Full())
			if err != nil {
				return err
			}
			square[i] = c
			return nil
		})
	}
	for i, grp := range groups {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := ReadRandomCase[T](grp)
			if err != nil {
				return err
			}
			random[i] = c
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, nil, err
	}

	return square, random, nil
}
