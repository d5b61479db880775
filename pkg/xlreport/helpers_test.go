package xlreport

import (
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/models"
	"github.com/xuri/excelize/v2"
)

// newTemplate saves a workbook named name under dir with header as its first row.
func newTemplate(t *testing.T, dir, name string, header models.ColumnSchema) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if len(header) > 0 {
		values := make([]interface{}, len(header))
		for i, h := range header {
			values[i] = h
		}
		require.NoError(t, f.SetSheetRow("Sheet1", "A1", &values))
	}

	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func fileHash(t *testing.T, path string) [32]byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return sha256.Sum256(data)
}

var orderHeader = models.ColumnSchema{"CustomerID", "CustomerName", "Phone", "OrderDate", "Quantity"}

var defaultKinds = []models.Kind{
	models.KindNumber, models.KindString, models.KindString, models.KindString, models.KindNumber,
}

func rowKinds(row models.Row) []models.Kind {
	kinds := make([]models.Kind, len(row.Cells))
	for i, c := range row.Cells {
		kinds[i] = c.Kind
	}
	return kinds
}
