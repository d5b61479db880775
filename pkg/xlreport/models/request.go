package models

import "time"

// ReportRequest asks for one report built from a template.
type ReportRequest struct {
	// TemplatePath is the path of the template workbook.
	TemplatePath string `json:"template_path"`
	// RowCount is the number of synthetic rows to append.
	RowCount int `json:"row_count"`
}

// OutputArtifact describes a persisted report.
type OutputArtifact struct {
	// Path is the output workbook path.
	Path string `json:"path"`
	// CreatedAt is the dispatch time the path was derived from.
	CreatedAt time.Time `json:"created_at"`
}

// Outcome is the terminal result of one ReportRequest.
type Outcome struct {
	RequestID string          `json:"request_id"`
	Request   ReportRequest   `json:"request"`
	Artifact  *OutputArtifact `json:"artifact,omitempty"`
	Err       error           `json:"-"`
}

// Success reports whether the request produced an artifact.
func (o Outcome) Success() bool {
	return o.Err == nil && o.Artifact != nil
}
