package xlreport

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// TimestampLayout is the timestamp embedded in output file names.
const TimestampLayout = "20060102_150405"

// OutputPath derives the report path for templatePath at t:
// <dir>/<base>_<yyyyMMdd_HHmmss>.xlsx.
func OutputPath(templatePath string, t time.Time) string {
	dir := filepath.Dir(templatePath)
	base := filepath.Base(templatePath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, fmt.Sprintf("%s_%s.xlsx", name, t.Format(TimestampLayout)))
}

// withSuffix inserts _n before the extension of path.
func withSuffix(path string, n int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(path, ext), n, ext)
}
