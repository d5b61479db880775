// Package writer assembles report workbooks with excelize.
package writer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ukaji3/xlreport-go/pkg/xlreport/cells"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/models"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/parser"
	"github.com/xuri/excelize/v2"
)

// ErrIO indicates a copy, directory creation, open or write failure.
var ErrIO = errors.New("report i/o failed")

// CopyAndAppend copies the template to outputPath, overwriting it, and
// appends rows after the last existing row of the copy's first sheet.
// The workbook is saved once, after every row has been placed.
func CopyAndAppend(templatePath, outputPath string, rows []models.Row) error {
	if samePath(templatePath, outputPath) {
		return fmt.Errorf("%w: output %s would overwrite the template", ErrIO, outputPath)
	}
	if err := ensureDir(outputPath); err != nil {
		return err
	}
	if err := copyFile(templatePath, outputPath); err != nil {
		return err
	}

	last, err := parser.LastRowIndex(outputPath)
	if err != nil {
		return err
	}

	f, err := excelize.OpenFile(outputPath)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", ErrIO, outputPath, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return fmt.Errorf("%w: %s has no sheets", parser.ErrTemplateMalformed, outputPath)
	}

	if err := appendRows(f, sheets[0], last+1, rows); err != nil {
		return err
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("%w: save %s: %w", ErrIO, outputPath, err)
	}
	return nil
}

// CreateFresh builds a new single-sheet workbook holding the header derived
// from schema (omitted when empty) followed by rows, and saves it once.
func CreateFresh(outputPath string, schema models.ColumnSchema, rows []models.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	start := 1
	if len(schema) > 0 {
		if err := appendRows(f, sheet, start, []models.Row{HeaderRow(schema)}); err != nil {
			return err
		}
		start++
	}
	if err := appendRows(f, sheet, start, rows); err != nil {
		return err
	}

	if err := ensureDir(outputPath); err != nil {
		return err
	}
	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("%w: save %s: %w", ErrIO, outputPath, err)
	}
	return nil
}

// HeaderRow turns a schema into a row of string cells.
func HeaderRow(schema models.ColumnSchema) models.Row {
	row := models.Row{Cells: make([]models.Cell, len(schema))}
	for i, name := range schema {
		row.Cells[i] = cells.Encode(name, models.KindString)
	}
	return row
}

// appendRows writes rows to sheet starting at the 1-based row number start.
func appendRows(f *excelize.File, sheet string, start int, rows []models.Row) error {
	for i, row := range rows {
		if len(row.Cells) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, start+i)
		if err != nil {
			return fmt.Errorf("%w: row %d: %w", ErrIO, start+i, err)
		}
		values := make([]interface{}, len(row.Cells))
		for j, c := range row.Cells {
			values[j] = cells.Value(c)
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("%w: write row %d: %w", ErrIO, start+i, err)
		}
	}
	return nil
}

func ensureDir(outputPath string) error {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrIO, dir, err)
	}
	return nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// copyFile duplicates src to dst, truncating dst if it exists.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("%w: copy template: %w", ErrIO, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: copy template: %w", ErrIO, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("%w: copy template: %w", ErrIO, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: copy template: %w", ErrIO, err)
	}
	return nil
}
