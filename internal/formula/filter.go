package formula

import "strings"

// metadataPrefixes mark the declaration lines judged safe to evaluate.
// sha256 is handled separately below because the same keyword also opens
// auxiliary per-bottle checksum records.
var metadataPrefixes = []string{"desc ", "homepage ", "url "}

// FilterSource reduces a formula script to the declarative lines carrying
// package metadata. Retained lines keep their original content and relative
// order; a later declaration of the same field must be able to override an
// earlier one. Everything else (install blocks, conditionals, comments,
// method definitions) is dropped.
//
// The filter operates on single physical lines only: a declaration split
// across lines is not recognized. FilterSource is idempotent.
func FilterSource(src string) string {
	var b strings.Builder
	for _, line := range strings.Split(src, "\n") {
		if isMetadataLine(line) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// isMetadataLine reports whether a single physical line is a recognized
// metadata declaration.
func isMetadataLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range metadataPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}

	// Only the primary checksum form `sha256 "<digest>"` qualifies. The
	// keyword-argument form (`sha256 cellar: :any, arm64_sonoma: "..."`)
	// records a bottle checksum, not the package checksum, and is excluded.
	return strings.HasPrefix(trimmed, `sha256 "`)
}
