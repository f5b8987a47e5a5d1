package formula

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrInvalidIdentifier is returned when a file name cannot produce a
// non-empty class identifier.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// DeriveIdentifier turns a formula file path into the class identifier the
// script is expected to declare: the file stem is split on '-', the first
// rune of each segment is uppercased, and the segments are concatenated
// with no separator (e.g. "lib-png.rb" -> "LibPng", "a2ps.rb" -> "A2ps").
func DeriveIdentifier(path string) (string, error) {
	stem := FileStem(path)

	var b strings.Builder
	for _, segment := range strings.Split(stem, "-") {
		if segment == "" {
			continue
		}
		first, size := utf8.DecodeRuneInString(segment)
		b.WriteString(strings.ToUpper(string(first)))
		b.WriteString(segment[size:])
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("%w: file stem %q yields no class name", ErrInvalidIdentifier, stem)
	}
	return b.String(), nil
}

// FileStem returns the file name without its extension. The stem, not the
// derived identifier, is what names the resulting Record.
func FileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
