package xlreport

import (
	"errors"
	"fmt"

	"github.com/ukaji3/xlreport-go/pkg/xlreport/parser"
	"github.com/ukaji3/xlreport-go/pkg/xlreport/writer"
)

// Sentinel errors, usable with errors.Is on any error returned by this package.
var (
	ErrTemplateNotFound            = parser.ErrTemplateNotFound
	ErrTemplateMalformed           = parser.ErrTemplateMalformed
	ErrSharedStringIndexOutOfRange = parser.ErrSharedStringIndexOutOfRange
	ErrIO                          = writer.ErrIO
)

// ErrInvalidRowCount indicates a non-positive or non-numeric row count.
var ErrInvalidRowCount = errors.New("invalid row count")

// Generation stages reported by GenerationError.
const (
	StageRead  = "read"
	StageWrite = "write"
)

// GenerationError represents an error while generating one report.
type GenerationError struct {
	TemplatePath string
	Stage        string // "read", "write"
	Err          error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation error for template %q (%s): %v", e.TemplatePath, e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(templatePath, stage string, err error) *GenerationError {
	return &GenerationError{
		TemplatePath: templatePath,
		Stage:        stage,
		Err:          err,
	}
}
