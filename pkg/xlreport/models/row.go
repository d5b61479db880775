package models

// ColumnSchema is the ordered list of header names of a sheet.
type ColumnSchema []string

// Row represents a single row of typed cells.
type Row struct {
	// Index is the 1-based sheet row number, 0 if the row is not placed yet.
	Index int `json:"r"`
	// Cells holds the cells in column order.
	Cells []Cell `json:"c"`
}

// Texts returns the text of every cell in order.
func (r Row) Texts() []string {
	out := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		out[i] = c.Text
	}
	return out
}

// Sheet is a read-back view of one worksheet.
type Sheet struct {
	// Name is the sheet name as declared in the workbook.
	Name string `json:"name"`
	// Rows contains the rows present in the sheet, in sheet order.
	Rows []Row `json:"rows,omitempty"`
}
