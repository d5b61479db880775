package parser

import (
	"github.com/ukaji3/xlreport-go/pkg/xlreport/models"
)

// ReadSchema extracts the header row of the template's first worksheet.
// A worksheet without rows yields an empty schema.
func ReadSchema(path string) (models.ColumnSchema, error) {
	pkg, err := openPackage(path)
	if err != nil {
		return nil, err
	}
	defer pkg.Close()

	rc, err := pkg.openSheet()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	schema := models.ColumnSchema{}
	err = eachRow(rc, func(row xmlRow) (bool, error) {
		for _, c := range row.Cells {
			text, err := cellText(c, pkg.sharedStrings)
			if err != nil {
				return false, err
			}
			schema = append(schema, text)
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return schema, nil
}

// ReadSheet reads every row of the template's first worksheet.
func ReadSheet(path string) (*models.Sheet, error) {
	pkg, err := openPackage(path)
	if err != nil {
		return nil, err
	}
	defer pkg.Close()

	rc, err := pkg.openSheet()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	sheet := &models.Sheet{Name: pkg.sheetName}
	err = eachRow(rc, func(row xmlRow) (bool, error) {
		out := models.Row{Index: row.Index, Cells: make([]models.Cell, 0, len(row.Cells))}
		for _, c := range row.Cells {
			cell, err := typedCell(c, pkg.sharedStrings)
			if err != nil {
				return false, err
			}
			out.Cells = append(out.Cells, cell)
		}
		sheet.Rows = append(sheet.Rows, out)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return sheet, nil
}

// LastRowIndex returns the highest row number present on the first
// worksheet, or 0 when it has no rows.
func LastRowIndex(path string) (int, error) {
	pkg, err := openPackage(path)
	if err != nil {
		return 0, err
	}
	defer pkg.Close()

	rc, err := pkg.openSheet()
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	last := 0
	err = eachRow(rc, func(row xmlRow) (bool, error) {
		if row.Index > last {
			last = row.Index
		}
		return true, nil
	})
	if err != nil {
		return 0, err
	}
	return last, nil
}
