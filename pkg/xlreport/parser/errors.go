package parser

import "errors"

// ErrTemplateNotFound indicates the template does not exist or cannot be
// opened as a workbook package.
var ErrTemplateNotFound = errors.New("template not found")

// ErrTemplateMalformed indicates the package lacks a workbook part or a worksheet.
var ErrTemplateMalformed = errors.New("template malformed")

// ErrSharedStringIndexOutOfRange indicates a cell references a shared string
// past the end of the shared-string table.
var ErrSharedStringIndexOutOfRange = errors.New("shared string index out of range")
