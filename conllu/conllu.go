// Package conllu reads dependency parsed sentences in CoNLL-U format.
//
// Comment lines, multi-word token ranges (1-2) and empty nodes (1.1) are
// skipped. A blank line ends a sentence.
package conllu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	sent "github.com/revelaction/relex/sentence"
)

const (
	fieldSeparator = "\t"
	minFields      = 8
	maxLineSize    = 1024 * 1024
)

// Column positions
const (
	colId = iota
	colForm
	colLemma
	colUpos
	colXpos
	colFeats
	colHead
	colDeprel
)

var ErrMalformed = errors.New("malformed conllu line")

// LineError locates a parse error in the input.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Reader yields the sentences of a CoNLL-U stream.
type Reader struct {
	scanner *bufio.Scanner
	line    int
	next    int
}

func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{scanner: sc}
}

// Next returns the next sentence, or io.EOF when the input is exhausted.
func (r *Reader) Next() (sent.Sentence, error) {
	var tokens []sent.Token

	for r.scanner.Scan() {
		r.line++
		line := strings.TrimRight(r.scanner.Text(), "\r")

		if strings.TrimSpace(line) == "" {
			if len(tokens) == 0 {
				continue
			}
			return r.sentence(tokens), nil
		}

		if strings.HasPrefix(line, "#") {
			continue
		}

		tk, skip, err := parseLine(line)
		if err != nil {
			return sent.Sentence{}, &LineError{Line: r.line, Err: err}
		}
		if skip {
			continue
		}

		if tk.Id != len(tokens)+1 {
			return sent.Sentence{}, &LineError{Line: r.line, Err: fmt.Errorf("%w: token id %d, expected %d", ErrMalformed, tk.Id, len(tokens)+1)}
		}

		tokens = append(tokens, tk)
	}

	if err := r.scanner.Err(); err != nil {
		return sent.Sentence{}, err
	}

	// last sentence without trailing blank line
	if len(tokens) > 0 {
		return r.sentence(tokens), nil
	}

	return sent.Sentence{}, io.EOF
}

func (r *Reader) sentence(tokens []sent.Token) sent.Sentence {
	s := sent.Sentence{Id: r.next, Tokens: tokens}
	r.next++
	return s
}

// parseLine parses a token line. skip is true for multi-word ranges and
// empty nodes.
func parseLine(line string) (sent.Token, bool, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) < minFields {
		return sent.Token{}, false, fmt.Errorf("%w: %d fields, expected at least %d", ErrMalformed, len(fields), minFields)
	}

	if strings.ContainsAny(fields[colId], "-.") {
		return sent.Token{}, true, nil
	}

	id, err := strconv.Atoi(fields[colId])
	if err != nil {
		return sent.Token{}, false, fmt.Errorf("%w: id %q", ErrMalformed, fields[colId])
	}

	head := 0
	if h := fields[colHead]; h != "_" {
		head, err = strconv.Atoi(h)
		if err != nil {
			return sent.Token{}, false, fmt.Errorf("%w: head %q", ErrMalformed, h)
		}
	}

	return sent.Token{
		Id:    id,
		Head:  head,
		Text:  fields[colForm],
		Lemma: fields[colLemma],
		Pos:   fields[colUpos],
		Tag:   fields[colXpos],
		Dep:   fields[colDeprel],
	}, false, nil
}

// Open opens a CoNLL-U file, decompressing it when the name ends in .gz.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}

	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}

	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("gzip error: %w", err)
	}

	return &gzipFile{Reader: zr, f: f}, nil
}

type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g *gzipFile) Close() error {
	zerr := g.Reader.Close()
	if err := g.f.Close(); err != nil {
		return err
	}
	return zerr
}

// ReadFile calls fn for every sentence of the file at path, stopping at the
// first error.
func ReadFile(path string, fn func(sent.Sentence) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	r := NewReader(rc)
	for {
		s, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if err := fn(s); err != nil {
			return err
		}
	}
}
