// Package config defines the tool's settings model and the loader for the
// optional HCL settings file. Settings describe how an extraction run
// behaves; the formula scripts being extracted are a different language
// entirely and never pass through this package.
package config
