// Copyright (c) 2026 Keymaster Team
// Envalidator - environment file validation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package envfile reads and mutates line-oriented key=value files. A line
// is either blank, a comment ('#' as first non-space character) or a
// key=value declaration. There are no quoting or continuation rules; the
// value starts after the first '=' and may itself contain '='.
package envfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/toeirei/envalidator/internal/keyset"
)

// Entry is a single key=value declaration. Key and Value are trimmed of
// surrounding whitespace; Value may be empty.
type Entry struct {
	Key   string
	Value string
}

// ParseError reports a non-blank, non-comment line without a '='. Such a
// line is always fatal; nothing is skipped silently.
type ParseError struct {
	File string
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: malformed line, missing '=': %q", e.File, e.Line, e.Text)
}

// scanEntries walks every declaration in the file at path, invoking fn for
// each. The file handle is released on all return paths.
func scanEntries(path string, fn func(Entry)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return &ParseError{File: path, Line: lineNo, Text: line}
		}
		fn(Entry{Key: strings.TrimSpace(key), Value: strings.TrimSpace(value)})
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

// Keys returns the set of keys declared in the file at path.
func Keys(path string) (keyset.Set[string], error) {
	keys := keyset.New[string]()
	if err := scanEntries(path, func(e Entry) {
		keys.Add(e.Key)
	}); err != nil {
		return nil, err
	}
	return keys, nil
}

// EmptyKeys returns the keys in the file at path whose value trims to the
// empty string. The result is always a subset of Keys(path).
func EmptyKeys(path string) (keyset.Set[string], error) {
	keys := keyset.New[string]()
	if err := scanEntries(path, func(e Entry) {
		if e.Value == "" {
			keys.Add(e.Key)
		}
	}); err != nil {
		return nil, err
	}
	return keys, nil
}
