// Package report serializes violation sets as JSON, CSV, plain text or HTML.
package report

import (
	"fmt"
	"sort"
	"strings"
)

// Format identifies an export format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatText Format = "text"
	FormatHTML Format = "html"
)

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	Name        Format `json:"name"`
	MIMEType    string `json:"mime_type"`
	Extension   string `json:"extension"`
	Description string `json:"description"`
}

// formatRegistry contains metadata for all supported formats. Read-only.
var formatRegistry = map[Format]FormatInfo{
	FormatJSON: {
		Name:        FormatJSON,
		MIMEType:    "application/json",
		Extension:   ".json",
		Description: "JSON document with timestamp, summary and violations",
	},
	FormatCSV: {
		Name:        FormatCSV,
		MIMEType:    "text/csv; charset=utf-8",
		Extension:   ".csv",
		Description: "One row per violation",
	},
	FormatText: {
		Name:        FormatText,
		MIMEType:    "text/plain; charset=utf-8",
		Extension:   ".txt",
		Description: "Plain-text compliance report grouped by severity",
	},
	FormatHTML: {
		Name:        FormatHTML,
		MIMEType:    "text/html; charset=utf-8",
		Extension:   ".html",
		Description: "Standalone HTML compliance report grouped by severity",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := formatRegistry[format]
	return info, ok
}

// Formats lists the supported formats sorted by name.
func Formats() []FormatInfo {
	out := make([]FormatInfo, 0, len(formatRegistry))
	for _, info := range formatRegistry {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// UnsupportedFormatError is returned for a format that is not supported.
type UnsupportedFormatError struct {
	Requested string
	Supported []Format
}

func (e *UnsupportedFormatError) Error() string {
	names := make([]string, len(e.Supported))
	for i, f := range e.Supported {
		names[i] = string(f)
	}
	return fmt.Sprintf("unsupported export format %q (supported: %s)", e.Requested, strings.Join(names, ", "))
}

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := formatRegistry[f]; ok {
		return f, nil
	}
	supported := make([]Format, 0, len(formatRegistry))
	for _, info := range Formats() {
		supported = append(supported, info.Name)
	}
	return "", &UnsupportedFormatError{Requested: name, Supported: supported}
}
