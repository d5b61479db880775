package xlreport

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseRequests(t *testing.T) {
	dir := t.TempDir()
	a := newTemplate(t, dir, "a.xlsx", orderHeader)
	b := newTemplate(t, dir, "b.xlsx", orderHeader)
	missing := filepath.Join(dir, "missing.xlsx")

	tests := []struct {
		name     string
		args     []string
		expected []models.ReportRequest
		warnings int
	}{
		{
			name:     "pairs",
			args:     []string{a, "10", b, "3"},
			expected: []models.ReportRequest{{TemplatePath: a, RowCount: 10}, {TemplatePath: b, RowCount: 3}},
		},
		{
			name:     "orphan count",
			args:     []string{"5", a, "2"},
			expected: []models.ReportRequest{{TemplatePath: a, RowCount: 2}},
			warnings: 1,
		},
		{
			name:     "non positive and non numeric counts",
			args:     []string{a, "0", "-4", "abc", "7"},
			expected: []models.ReportRequest{{TemplatePath: a, RowCount: 7}},
			warnings: 3,
		},
		{
			name:     "missing template",
			args:     []string{missing, "5"},
			expected: nil,
			warnings: 3,
		},
		{
			name:     "dangling template",
			args:     []string{a, "1", b},
			expected: []models.ReportRequest{{TemplatePath: a, RowCount: 1}},
			warnings: 1,
		},
		{
			name:     "template replaced before its count",
			args:     []string{a, b, "4"},
			expected: []models.ReportRequest{{TemplatePath: b, RowCount: 4}},
			warnings: 1,
		},
		{
			name:     "directory is not a template",
			args:     []string{dir, "4"},
			expected: nil,
			warnings: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			result := ParseRequests(tt.args, zap.New(core))

			assert.Equal(t, tt.expected, result)
			assert.Equal(t, tt.warnings, logs.FilterLevelExact(zapcore.WarnLevel).Len())
		})
	}
}
