// Package parser reads template workbooks straight from their OOXML package.
package parser

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
)

const (
	defaultWorkbookPath = "xl/workbook.xml"
	rootRelsPath        = "_rels/.rels"

	relTypeOfficeDocument = "/officeDocument"
	relTypeSharedStrings  = "/sharedStrings"
)

// sheetRef is a <sheet> entry of workbook.xml.
type sheetRef struct {
	name string
	rID  string
}

// relationship is a <Relationship> entry of a .rels part.
type relationship struct {
	typ    string
	target string
}

// workbookPackage is an opened template with its first worksheet resolved.
type workbookPackage struct {
	zr            *zip.ReadCloser
	sheetName     string
	sheetPath     string
	sharedStrings []string
}

// openPackage opens the package at filePath and resolves the first worksheet
// and the shared-string table.
func openPackage(filePath string) (*workbookPackage, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTemplateNotFound, filePath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrTemplateNotFound, filePath)
	}

	zr, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTemplateNotFound, filePath, err)
	}

	pkg, err := resolvePackage(&zr.Reader)
	if err != nil {
		zr.Close()
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	pkg.zr = zr
	return pkg, nil
}

func resolvePackage(r *zip.Reader) (*workbookPackage, error) {
	workbookPath := findWorkbookPath(r)

	workbookXML, err := readZipFile(r, workbookPath)
	if err != nil {
		return nil, err
	}
	if workbookXML == nil {
		return nil, fmt.Errorf("%w: no workbook part", ErrTemplateMalformed)
	}

	sheets := parseWorkbookSheets(workbookXML)
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no worksheet", ErrTemplateMalformed)
	}
	first := sheets[0]

	baseDir := path.Dir(workbookPath)
	relsXML, err := readZipFile(r, relsPathFor(workbookPath))
	if err != nil {
		return nil, err
	}
	rels := parseRels(relsXML)

	rel, ok := rels[first.rID]
	if !ok {
		return nil, fmt.Errorf("%w: sheet %q has no relationship", ErrTemplateMalformed, first.name)
	}
	sheetPath := resolveRelativePath(rel.target, baseDir)
	if findZipFile(r, sheetPath) == nil {
		return nil, fmt.Errorf("%w: sheet part %s missing", ErrTemplateMalformed, sheetPath)
	}

	sstPath := path.Join(baseDir, "sharedStrings.xml")
	for _, rel := range rels {
		if strings.HasSuffix(rel.typ, relTypeSharedStrings) {
			sstPath = resolveRelativePath(rel.target, baseDir)
			break
		}
	}
	sstXML, err := readZipFile(r, sstPath)
	if err != nil {
		return nil, err
	}
	var sst []string
	if sstXML != nil {
		if sst, err = parseSharedStrings(sstXML); err != nil {
			return nil, fmt.Errorf("%w: shared strings: %w", ErrTemplateMalformed, err)
		}
	}

	return &workbookPackage{
		sheetName:     first.name,
		sheetPath:     sheetPath,
		sharedStrings: sst,
	}, nil
}

// Close releases the package.
func (p *workbookPackage) Close() error {
	return p.zr.Close()
}

// openSheet opens the first worksheet part for streaming.
func (p *workbookPackage) openSheet() (io.ReadCloser, error) {
	f := findZipFile(&p.zr.Reader, p.sheetPath)
	if f == nil {
		return nil, fmt.Errorf("%w: sheet part %s missing", ErrTemplateMalformed, p.sheetPath)
	}
	return f.Open()
}

// findWorkbookPath locates the main workbook part through the package
// relationships, falling back to the conventional location.
func findWorkbookPath(r *zip.Reader) string {
	relsXML, err := readZipFile(r, rootRelsPath)
	if err != nil || relsXML == nil {
		return defaultWorkbookPath
	}
	for _, rel := range parseRels(relsXML) {
		if strings.HasSuffix(rel.typ, relTypeOfficeDocument) {
			return resolveRelativePath(rel.target, "")
		}
	}
	return defaultWorkbookPath
}

// relsPathFor returns the relationships part of a package part.
func relsPathFor(partPath string) string {
	return path.Join(path.Dir(partPath), "_rels", path.Base(partPath)+".rels")
}

func findZipFile(r *zip.Reader, name string) *zip.File {
	for _, f := range r.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// readZipFile returns the content of name, or nil if the package has no such part.
func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	f := findZipFile(r, name)
	if f == nil {
		return nil, nil
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTemplateMalformed, name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTemplateMalformed, name, err)
	}
	return data, nil
}

// resolveRelativePath resolves a relationship target against the directory
// of the part owning the relationship. Absolute targets are package-rooted.
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(baseDir, target)
}

// parseWorkbookSheets returns the <sheet> entries of workbook.xml in document order.
func parseWorkbookSheets(data []byte) []sheetRef {
	var result []sheetRef
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			var ref sheetRef
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "name":
					ref.name = attr.Value
				case "id":
					ref.rID = attr.Value
				}
			}
			if ref.rID != "" {
				result = append(result, ref)
			}
		}
	}

	return result
}

// parseRels maps relationship ids to their type and target.
func parseRels(data []byte) map[string]relationship {
	result := make(map[string]relationship)
	if data == nil {
		return result
	}
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var id string
			var rel relationship
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					id = attr.Value
				case "Type":
					rel.typ = attr.Value
				case "Target":
					rel.target = attr.Value
				}
			}
			if id != "" {
				result[id] = rel
			}
		}
	}

	return result
}
