package formula

import (
	"fmt"
	"os"
)

// Parse extracts the metadata record from the formula script at path. The
// script's installation logic never runs: only the filtered declarative
// lines reach the evaluator, so a malformed or hostile install block cannot
// affect the result. Parse is deterministic for a given file content.
func Parse(path string) (*Record, error) {
	identifier, err := DeriveIdentifier(path)
	if err != nil {
		return nil, err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading formula %s: %w", path, err)
	}

	capture, err := EvaluateSource(identifier, FilterSource(string(src)))
	if err != nil {
		return nil, err
	}

	attrs := RetrieveAttributes(capture)
	return &Record{
		Name:         FileStem(path),
		Description:  attrs.Description,
		Homepage:     attrs.Homepage,
		URL:          attrs.URL,
		SHA256:       attrs.SHA256,
		Dependencies: []string{},
	}, nil
}
