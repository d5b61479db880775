// Package output serializes templates and run results to JSON.
package output

import (
	"encoding/json"

	"github.com/ukaji3/xlreport-go/pkg/xlreport/models"
)

// TemplateView is the JSON view of an inspected template.
type TemplateView struct {
	// BookName is the template file name (no path).
	BookName string `json:"book_name"`
	// Columns is the header row of the first sheet.
	Columns models.ColumnSchema `json:"columns"`
	// Sheet holds the rows of the first sheet.
	Sheet *models.Sheet `json:"sheet"`
}

// OutcomeView is the JSON view of one request outcome.
type OutcomeView struct {
	RequestID string `json:"request_id"`
	Template  string `json:"template"`
	Rows      int    `json:"rows"`
	Success   bool   `json:"success"`
	Output    string `json:"output,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ToJSON serializes v, indented when pretty is set.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// Outcomes converts run outcomes into their JSON views.
func Outcomes(outcomes []models.Outcome) []OutcomeView {
	views := make([]OutcomeView, len(outcomes))
	for i, o := range outcomes {
		v := OutcomeView{
			RequestID: o.RequestID,
			Template:  o.Request.TemplatePath,
			Rows:      o.Request.RowCount,
			Success:   o.Success(),
		}
		if o.Artifact != nil {
			v.Output = o.Artifact.Path
		}
		if o.Err != nil {
			v.Error = o.Err.Error()
		}
		views[i] = v
	}
	return views
}
