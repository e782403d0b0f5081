package networth

import (
	"fmt"
	"path/filepath"
	"strings"
)

// this file contains the types shared by the import and export operations.
// Both are one-shot and stateless: the service does the parsing and encoding.

// Kind is the record kind an import or export applies to.
type Kind string

const (
	KindAssets Kind = "assets"
	KindDebts  Kind = "debts"
	// KindAll is only valid for a JSON export of both assets and debts.
	KindAll Kind = "all"
)

// ParseKind parses a record kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindAssets, KindDebts, KindAll:
		return k, nil
	}
	return "", fmt.Errorf("unknown kind %q, want %q, %q or %q", s, KindAssets, KindDebts, KindAll)
}

// FileFormat is an import/export file format.
type FileFormat string

const (
	FormatJSON FileFormat = "json"
	FormatCSV  FileFormat = "csv"
)

// ParseFileFormat parses a file format name, case insensitive.
func ParseFileFormat(s string) (FileFormat, error) {
	switch f := FileFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatCSV:
		return f, nil
	}
	return "", fmt.Errorf("unsupported format %q, want %q or %q", s, FormatJSON, FormatCSV)
}

// ContentType is the MIME type a file of this format is uploaded with.
func (f FileFormat) ContentType() string {
	if f == FormatCSV {
		return "text/csv"
	}
	return "application/json"
}

// ImportFileFormat returns the format of an import file from its extension.
// Only .json and .csv files can be imported.
func ImportFileFormat(filename string) (FileFormat, error) {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	f, err := ParseFileFormat(ext)
	if err != nil {
		return "", fmt.Errorf("please select a JSON or CSV file, got %q", filepath.Base(filename))
	}
	return f, nil
}

// ImportResult is the service's report of an import.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
	Total    int      `json:"total"`
}

// Message summarizes the result for kind, e.g. "Imported 3 assets, skipped 1 duplicates, 2 errors".
func (r ImportResult) Message(kind Kind) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Imported %d %s", r.Imported, kind)
	if r.Skipped > 0 {
		fmt.Fprintf(&b, ", skipped %d duplicates", r.Skipped)
	}
	if len(r.Errors) > 0 {
		fmt.Fprintf(&b, ", %d errors", len(r.Errors))
	}
	return b.String()
}
