// Package formula extracts structured package metadata from declarative
// formula scripts without running any of their installation logic. A script
// is reduced to the declarative lines judged safe, those lines are evaluated
// by a small dedicated evaluator into a per-call capture environment, and
// the captured values are assembled into a Record.
//
// Every Parse call owns its own capture state, so concurrent parses are safe
// even when two formula files derive the same class identifier.
package formula
