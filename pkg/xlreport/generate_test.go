package xlreport

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/models"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/parser"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/synth"
)

func TestGenerate_Append(t *testing.T) {
	dir := t.TempDir()
	template := newTemplate(t, dir, "orders.xlsx", orderHeader)
	before := fileHash(t, template)
	out := filepath.Join(dir, "out.xlsx")

	err := Generate(models.ReportRequest{TemplatePath: template, RowCount: 6}, out, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, before, fileHash(t, template))
	sheet, err := parser.ReadSheet(out)
	require.NoError(t, err)
	require.Len(t, sheet.Rows, 7)
	assert.Equal(t, []string(orderHeader), sheet.Rows[0].Texts())
	for _, row := range sheet.Rows[1:] {
		require.Len(t, row.Cells, 5)
		assert.Equal(t, models.KindNumber, row.Cells[0].Kind)
		assert.Equal(t, models.KindNumber, row.Cells[4].Kind)
	}
}

func TestGenerate_Fresh(t *testing.T) {
	dir := t.TempDir()
	template := newTemplate(t, dir, "custom.xlsx", models.ColumnSchema{"Id", "Name", "Note"})
	out := filepath.Join(dir, "fresh", "out.xlsx")

	opts := DefaultOptions()
	opts.Layout = LayoutFresh
	require.NoError(t, Generate(models.ReportRequest{TemplatePath: template, RowCount: 3}, out, opts))

	sheet, err := parser.ReadSheet(out)
	require.NoError(t, err)
	require.Len(t, sheet.Rows, 4)
	assert.Equal(t, []string{"Id", "Name", "Note"}, sheet.Rows[0].Texts())
	for _, row := range sheet.Rows[1:] {
		assert.Equal(t, defaultKinds, rowKinds(row))
	}
}

func TestGenerate_DataRowsIgnoreHeaderWidth(t *testing.T) {
	tests := []struct {
		name   string
		header models.ColumnSchema
		layout Layout
	}{
		{name: "narrow header", header: models.ColumnSchema{"Name", "Email", "Notes"}, layout: LayoutAppend},
		{name: "wide header", header: models.ColumnSchema{"A", "B", "C", "D", "E", "F", "G"}, layout: LayoutAppend},
		{name: "narrow header fresh", header: models.ColumnSchema{"Name", "Email", "Notes"}, layout: LayoutFresh},
		{name: "wide header fresh", header: models.ColumnSchema{"A", "B", "C", "D", "E", "F", "G"}, layout: LayoutFresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			template := newTemplate(t, dir, "template.xlsx", tt.header)
			out := filepath.Join(dir, "out.xlsx")

			opts := DefaultOptions()
			opts.Layout = tt.layout
			require.NoError(t, Generate(models.ReportRequest{TemplatePath: template, RowCount: 4}, out, opts))

			sheet, err := parser.ReadSheet(out)
			require.NoError(t, err)
			require.Len(t, sheet.Rows, 5)
			assert.Equal(t, []string(tt.header), sheet.Rows[0].Texts())
			for _, row := range sheet.Rows[1:] {
				assert.Equal(t, defaultKinds, rowKinds(row))
			}
		})
	}
}

func TestGenerate_HeaderlessTemplate(t *testing.T) {
	t.Run("default header written", func(t *testing.T) {
		dir := t.TempDir()
		template := newTemplate(t, dir, "blank.xlsx", nil)
		out := filepath.Join(dir, "out.xlsx")

		require.NoError(t, Generate(models.ReportRequest{TemplatePath: template, RowCount: 2}, out, DefaultOptions()))

		sheet, err := parser.ReadSheet(out)
		require.NoError(t, err)
		require.Len(t, sheet.Rows, 3)
		assert.Equal(t, []string(synth.DefaultSchema()), sheet.Rows[0].Texts())
	})

	t.Run("default header disabled", func(t *testing.T) {
		dir := t.TempDir()
		template := newTemplate(t, dir, "blank.xlsx", nil)
		out := filepath.Join(dir, "out.xlsx")

		disabled := false
		opts := DefaultOptions()
		opts.DefaultHeader = &disabled
		require.NoError(t, Generate(models.ReportRequest{TemplatePath: template, RowCount: 2}, out, opts))

		sheet, err := parser.ReadSheet(out)
		require.NoError(t, err)
		require.Len(t, sheet.Rows, 2)
		assert.Equal(t, models.KindNumber, sheet.Rows[0].Cells[0].Kind)
	})
}

func TestGenerate_Errors(t *testing.T) {
	dir := t.TempDir()
	err := Generate(models.ReportRequest{TemplatePath: filepath.Join(dir, "missing.xlsx"), RowCount: 1},
		filepath.Join(dir, "out.xlsx"), DefaultOptions())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, StageRead, genErr.Stage)
	assert.Contains(t, err.Error(), "missing.xlsx")
}
