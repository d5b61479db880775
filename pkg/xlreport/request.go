package xlreport

import (
	"os"
	"strconv"

	"github.com/ukaji3/xlreport-go/pkg/xlreport/models"
	"go.uber.org/zap"
)

// ParseRequests pairs template paths with the row count that follows them.
// Dangling templates, orphan or non-positive counts and unknown tokens are
// dropped with a warning.
func ParseRequests(args []string, logger *zap.Logger) []models.ReportRequest {
	if logger == nil {
		logger = zap.NewNop()
	}

	var requests []models.ReportRequest
	pending := ""

	for _, arg := range args {
		if isFile(arg) {
			if pending != "" {
				logger.Warn("Template path has no row count, skipping", zap.String("template", pending))
			}
			pending = arg
			continue
		}

		count, err := strconv.Atoi(arg)
		switch {
		case err != nil || count <= 0:
			logger.Warn("Invalid argument, skipping", zap.String("argument", arg))
		case pending == "":
			logger.Warn("Row count without a preceding template path, skipping", zap.Int("rows", count))
		default:
			requests = append(requests, models.ReportRequest{TemplatePath: pending, RowCount: count})
			pending = ""
		}
	}

	if pending != "" {
		logger.Warn("Template path has no row count, skipping", zap.String("template", pending))
	}

	if len(requests) > 0 {
		logger.Info("Parsed report requests", zap.Int("count", len(requests)))
	} else {
		logger.Warn("No valid report requests were parsed")
	}
	return requests
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
