package wordtree

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/multierr"
)

// ReadLines reads the lines of every named file, or of stdin if no file is
// given. Unreadable files are skipped and reported together.
func ReadLines(stdin io.Reader, paths ...string) ([]string, error) {
	if len(paths) == 0 {
		return scanLines(stdin)
	}

	var (
		lines []string
		errs  error
	)
	for _, path := range paths {
		res, err := readFile(path)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		lines = append(lines, res...)
	}
	return lines, errs
}

func readFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()
	lines, err := scanLines(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

func scanLines(r io.Reader) ([]string, error) {
	lines := make([]string, 0, 64)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	return lines, scanner.Err()
}

// Words splits the lines by the white spaces and lower cases the words.
// The punctuation around a word is dropped.
func Words(lines []string) []string {
	words := lo.FlatMap(lines, func(line string, _ int) []string {
		return strings.Fields(line)
	})
	words = lo.Map(words, func(w string, _ int) string {
		return strings.ToLower(strings.TrimFunc(w, isPunct))
	})
	return lo.Compact(words)
}

func isPunct(r rune) bool {
	return strings.ContainsRune(".,;:!?\"'()[]{}<>`", r)
}
