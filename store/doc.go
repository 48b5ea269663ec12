// Package store reads and writes a routes data file.
//
// The file holds a JSON array of route objects in insertion order,
// pretty-printed with four-space indentation. Destination names are written
// as UTF-8 without escaping. Save always replaces the whole file.
package store
