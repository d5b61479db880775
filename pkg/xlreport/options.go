// Package xlreport populates spreadsheet templates with synthetic rows.
package xlreport

import "github.com/ukaji3/xlreport-go/pkg/xlreport/synth"

// Layout selects how the output workbook is assembled.
type Layout string

const (
	// LayoutAppend copies the template and appends rows after its content.
	LayoutAppend Layout = "append"
	// LayoutFresh builds a new workbook from the template's header and the rows.
	LayoutFresh Layout = "fresh"
)

// Options configures report generation.
type Options struct {
	// Layout specifies how the output is assembled (append, fresh).
	Layout Layout
	// Seed seeds row synthesis. Zero draws a random seed per request;
	// otherwise request i of a run uses Seed+i.
	Seed int64
	// YearsBack bounds generated order dates. Zero means synth.DefaultYearsBack.
	YearsBack int
	// Concurrency caps the number of requests generated at once. Zero means no cap.
	Concurrency int
	// DefaultHeader specifies whether to write the default column names as
	// header when the template has none. If nil, defaults to true.
	DefaultHeader *bool
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{
		Layout:    LayoutAppend,
		YearsBack: synth.DefaultYearsBack,
	}
}

// ShouldWriteDefaultHeader returns whether a header-less template gets the
// default column names as header.
func (o Options) ShouldWriteDefaultHeader() bool {
	if o.DefaultHeader != nil {
		return *o.DefaultHeader
	}
	return true
}
