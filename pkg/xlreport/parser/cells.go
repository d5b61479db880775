package parser

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/xlreport-go/pkg/xlreport/cells"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/models"
)

// stringItem is an <si> of the shared-string table or the <is> of an inline string.
type stringItem struct {
	T    *string `xml:"t"`
	Runs []struct {
		T string `xml:"t"`
	} `xml:"r"`
}

func (s stringItem) text() string {
	var b strings.Builder
	if s.T != nil {
		b.WriteString(*s.T)
	}
	for _, r := range s.Runs {
		b.WriteString(r.T)
	}
	return b.String()
}

type xmlCell struct {
	Ref    string      `xml:"r,attr"`
	Type   string      `xml:"t,attr"`
	Value  string      `xml:"v"`
	Inline *stringItem `xml:"is"`
}

type xmlRow struct {
	Index int       `xml:"r,attr"`
	Cells []xmlCell `xml:"c"`
}

// parseSharedStrings returns the shared-string table in index order.
func parseSharedStrings(data []byte) ([]string, error) {
	var result []string
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "si" {
			var item stringItem
			if err := decoder.DecodeElement(&item, &se); err != nil {
				return nil, err
			}
			result = append(result, item.text())
		}
	}

	return result, nil
}

// eachRow streams the <row> elements of a worksheet part. fn returns false to stop.
func eachRow(r io.Reader, fn func(xmlRow) (bool, error)) error {
	decoder := xml.NewDecoder(r)
	prev := 0

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: worksheet: %w", ErrTemplateMalformed, err)
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "row" {
			continue
		}
		var row xmlRow
		if err := decoder.DecodeElement(&row, &se); err != nil {
			return fmt.Errorf("%w: worksheet row: %w", ErrTemplateMalformed, err)
		}
		// rows without an explicit number follow the previous one
		if row.Index <= 0 {
			row.Index = prev + 1
		}
		prev = row.Index

		more, err := fn(row)
		if err != nil || !more {
			return err
		}
	}
}

// cellText returns the display text of c, resolving shared-string references.
func cellText(c xmlCell, sst []string) (string, error) {
	switch c.Type {
	case "s":
		idx, err := strconv.Atoi(strings.TrimSpace(c.Value))
		if err != nil {
			return "", fmt.Errorf("%w: cell %s: bad shared string index %q", ErrTemplateMalformed, c.Ref, c.Value)
		}
		if idx < 0 || idx >= len(sst) {
			return "", fmt.Errorf("%w: cell %s references %d, table has %d entries",
				ErrSharedStringIndexOutOfRange, c.Ref, idx, len(sst))
		}
		return sst[idx], nil
	case "inlineStr":
		if c.Inline != nil {
			return c.Inline.text(), nil
		}
		return c.Value, nil
	default:
		return c.Value, nil
	}
}

// typedCell converts c into a model cell. Untyped and "n" cells are numbers
// when their literal parses; every other declared type reads back as text.
func typedCell(c xmlCell, sst []string) (models.Cell, error) {
	text, err := cellText(c, sst)
	if err != nil {
		return models.Cell{}, err
	}
	switch c.Type {
	case "", "n":
		return cells.Encode(text, models.KindNumber), nil
	default:
		return cells.Encode(text, models.KindString), nil
	}
}
