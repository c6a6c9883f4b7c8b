package tester

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// TestCase is a source together with the diagnostics the pipeline must report for it, in
// report order: lexical errors first, then syntax errors, then semantic errors. A case
// without diagnostics expects the source to be accepted.
//
// A test case file consists of three parts separated by lines of hyphens:
//
//	Duplicate fields
//	---
//	class A { int x; int x; }
//	---
//	1:22: duplicate field x in class A
type TestCase struct {
	Description string
	Source      string
	Diagnostics []string
}

func ParseTestCase(r io.Reader) (*TestCase, error) {
	parts, err := splitIntoParts(r)
	if err != nil {
		return nil, err
	}
	if len(parts) != 3 {
		return nil, fmt.Errorf("too many or too few part delimiters: a test case consists of just three parts: %v parts found", len(parts))
	}

	var diags []string
	for _, line := range strings.Split(string(parts[2].buf), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		diags = append(diags, line)
	}

	return &TestCase{
		Description: strings.TrimSpace(string(parts[0].buf)),
		Source:      string(parts[1].buf),
		Diagnostics: diags,
	}, nil
}

type testCasePart struct {
	buf       []byte
	lineCount int
}

func splitIntoParts(r io.Reader) ([]*testCasePart, error) {
	var bufs []*testCasePart
	s := bufio.NewScanner(r)
	delimited := false
	for {
		buf, lineCount, delim, err := readPart(s)
		if err != nil {
			return nil, err
		}
		if buf == nil {
			break
		}
		bufs = append(bufs, &testCasePart{
			buf:       buf,
			lineCount: lineCount,
		})
		delimited = delim
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	// A delimiter on the last line opens an empty part.
	if delimited {
		bufs = append(bufs, &testCasePart{
			buf: []byte{},
		})
	}
	return bufs, nil
}

var reDelim = regexp.MustCompile(`^\s*---+\s*$`)

// readPart returns nil at the end of the input and an empty slice for an empty part. The
// flag reports whether the part ended with a delimiter.
func readPart(s *bufio.Scanner) ([]byte, int, bool, error) {
	if !s.Scan() {
		return nil, 0, false, s.Err()
	}
	line := s.Bytes()
	if reDelim.Match(line) {
		return []byte{}, 0, true, nil
	}
	buf := &bytes.Buffer{}
	buf.Write(line)
	lineCount := 1
	for s.Scan() {
		line := s.Bytes()
		if reDelim.Match(line) {
			return buf.Bytes(), lineCount, true, nil
		}
		buf.WriteByte('\n')
		buf.Write(line)
		lineCount++
	}
	if err := s.Err(); err != nil {
		return nil, 0, false, err
	}
	return buf.Bytes(), lineCount, false, nil
}
