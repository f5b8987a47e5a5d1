// Package cli turns command-line arguments into validated extraction
// settings. It is a thin adapter: all real work happens in the app and
// formula packages.
package cli
