// Package formatter renders routes for display.
//
// This package is organized into:
// - table.go: fixed-width text table (the default display format)
// - json.go: JSON output in the same shape as the data file
// - pdf.go: printable A4 timetable
package formatter
