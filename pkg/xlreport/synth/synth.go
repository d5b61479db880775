// Package synth generates synthetic report rows.
package synth

import (
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/cells"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/models"
)

// DefaultYearsBack is how far in the past generated order dates may lie.
const DefaultYearsBack = 2

// Value bounds of the numeric default columns (inclusive).
const (
	MinCustomerID = 0
	MaxCustomerID = 99999
	MinQuantity   = 10
	MaxQuantity   = 39
)

// DateLayout is the ISO calendar date layout of generated dates.
const DateLayout = "2006-01-02"

// Column describes one generated column.
type Column struct {
	// Name is the header name of the column.
	Name string
	// Kind is the requested cell kind.
	Kind models.Kind

	value func(s *Synthesizer) string
}

// DefaultColumns returns the customer/order layout of every data row.
// Template headers never change it.
func DefaultColumns() []Column {
	return []Column{
		{Name: "CustomerID", Kind: models.KindNumber, value: customerID},
		{Name: "CustomerName", Kind: models.KindString, value: customerName},
		{Name: "Phone", Kind: models.KindString, value: phone},
		{Name: "OrderDate", Kind: models.KindString, value: orderDate},
		{Name: "Quantity", Kind: models.KindNumber, value: quantity},
	}
}

// DefaultSchema returns the header names of DefaultColumns.
func DefaultSchema() models.ColumnSchema {
	cols := DefaultColumns()
	schema := make(models.ColumnSchema, len(cols))
	for i, c := range cols {
		schema[i] = c.Name
	}
	return schema
}

// Config configures a Synthesizer.
type Config struct {
	// Seed seeds the generator. Zero picks a random seed.
	Seed int64
	// YearsBack bounds generated dates. Zero means DefaultYearsBack.
	YearsBack int
	// Now returns the reference time for dates. Nil means time.Now.
	Now func() time.Time
}

// Synthesizer produces synthetic rows.
// It owns its random source and is not safe for concurrent use.
type Synthesizer struct {
	faker   *gofakeit.Faker
	columns []Column
	now     time.Time
	years   int
}

// New creates a Synthesizer for columns.
func New(columns []Column, cfg Config) *Synthesizer {
	now := time.Now
	if cfg.Now != nil {
		now = cfg.Now
	}
	years := cfg.YearsBack
	if years <= 0 {
		years = DefaultYearsBack
	}
	return &Synthesizer{
		faker:   gofakeit.New(cfg.Seed),
		columns: columns,
		now:     now(),
		years:   years,
	}
}

// Columns returns the generated columns.
func (s *Synthesizer) Columns() []Column {
	return s.columns
}

// Synthesize produces the row at position index (0-based) of a batch.
// Generated values do not depend on index; the row is not placed on a sheet.
func (s *Synthesizer) Synthesize(index int) models.Row {
	row := models.Row{Cells: make([]models.Cell, len(s.columns))}
	for i, col := range s.columns {
		row.Cells[i] = cells.Encode(col.value(s), col.Kind)
	}
	return row
}

// Rows produces n rows. n <= 0 yields an empty slice.
func (s *Synthesizer) Rows(n int) []models.Row {
	if n <= 0 {
		return []models.Row{}
	}
	rows := make([]models.Row, n)
	for i := range rows {
		rows[i] = s.Synthesize(i)
	}
	return rows
}

func customerID(s *Synthesizer) string {
	return strconv.Itoa(s.faker.Number(MinCustomerID, MaxCustomerID))
}

func customerName(s *Synthesizer) string {
	return s.faker.Name()
}

func phone(s *Synthesizer) string {
	return s.faker.PhoneFormatted()
}

func orderDate(s *Synthesizer) string {
	start := s.now.AddDate(-s.years, 0, 0)
	return s.faker.DateRange(start, s.now).In(s.now.Location()).Format(DateLayout)
}

func quantity(s *Synthesizer) string {
	return strconv.Itoa(s.faker.Number(MinQuantity, MaxQuantity))
}
