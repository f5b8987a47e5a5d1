// Package executor runs formula extraction over many paths with a bounded
// pool of workers. Results preserve input order, and one failed path never
// aborts the rest of the batch.
package executor
