package xlreport

import (
	"github.com/ukaji3/xlreport-go/pkg/xlreport/models"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/parser"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/synth"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/writer"
)

// Generate builds one report from req.TemplatePath into outputPath.
// The template is only read; the output is written once. Data rows always
// use the default column layout; the template's header row only decides
// whether a header has to be added.
func Generate(req models.ReportRequest, outputPath string, opts Options) error {
	schema, err := parser.ReadSchema(req.TemplatePath)
	if err != nil {
		return NewGenerationError(req.TemplatePath, StageRead, err)
	}

	s := synth.New(synth.DefaultColumns(), synth.Config{
		Seed:      opts.Seed,
		YearsBack: opts.YearsBack,
	})
	rows := s.Rows(req.RowCount)

	header := schema
	if len(schema) == 0 && opts.ShouldWriteDefaultHeader() {
		header = synth.DefaultSchema()
	}

	switch opts.Layout {
	case LayoutFresh:
		err = writer.CreateFresh(outputPath, header, rows)
	default:
		// the template's own header row stays in place; only a missing one is added
		if len(schema) == 0 && len(header) > 0 {
			rows = append([]models.Row{writer.HeaderRow(header)}, rows...)
		}
		err = writer.CopyAndAppend(req.TemplatePath, outputPath, rows)
	}
	if err != nil {
		return NewGenerationError(req.TemplatePath, StageWrite, err)
	}
	return nil
}
