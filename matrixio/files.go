// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// maxLineBytes bounds one fixture line; a 100-wide row of %.18e values is ~2.5KiB.
const maxLineBytes = 1 << 20

// FilePath names one regular file inside a directory.
type FilePath struct {
	Dir  string
	Name string
}

// Full returns Dir joined with Name.
func (f FilePath) Full() string { return filepath.Join(f.Dir, f.Name) }

// FilesInDirectory lists the regular files directly inside dir, sorted by name.
// Subdirectories are skipped.
func FilesInDirectory(dir string) ([]FilePath, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("FilesInDirectory(%q): %w", dir, err)
	}

	files := make([]FilePath, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		files = append(files, FilePath{Dir: dir, Name: e.Name()})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	return files, nil
}

// ReadLines returns the lines of a text file without trailing newlines.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadLines(%q): %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadLines(%q): %w", path, err)
	}

	return lines, nil
}
