// Package models defines data structures for report generation.
package models

// Kind is the stored type of a cell.
type Kind string

const (
	// KindString stores the cell text verbatim.
	KindString Kind = "string"
	// KindNumber stores the cell text as a numeric literal.
	KindNumber Kind = "number"
)

// Cell is a single typed cell value.
type Cell struct {
	// Text is the stored text. For KindNumber it is a canonical numeric literal.
	Text string `json:"text"`
	// Kind is the stored type.
	Kind Kind `json:"kind"`
}
