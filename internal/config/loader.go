package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// fileRoot mirrors the top-level structure of a settings file.
type fileRoot struct {
	Extract *extractBlock `hcl:"extract,block"`
	Remain  hcl.Body      `hcl:",remain"`
}

// extractBlock is the `extract` block of a settings file. Every attribute
// is optional; an unset attribute leaves the current setting untouched.
type extractBlock struct {
	Extension *string `hcl:"extension,optional"`
	Workers   *int    `hcl:"workers,optional"`
	Output    *string `hcl:"output,optional"`
	LogLevel  *string `hcl:"log_level,optional"`
	LogFormat *string `hcl:"log_format,optional"`
}

// ApplyFile overlays the values from an HCL settings file onto s. Flags are
// expected to be applied after this, so the precedence is defaults, then
// file, then flags.
func ApplyFile(s *Settings, path string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode settings file %s: %w", path, diags)
	}
	if root.Extract == nil {
		return nil
	}

	block := root.Extract
	if block.Extension != nil {
		s.Extension = *block.Extension
	}
	if block.Workers != nil {
		s.Workers = *block.Workers
	}
	if block.Output != nil {
		s.Output = *block.Output
	}
	if block.LogLevel != nil {
		s.LogLevel = *block.LogLevel
	}
	if block.LogFormat != nil {
		s.LogFormat = *block.LogFormat
	}
	return nil
}
