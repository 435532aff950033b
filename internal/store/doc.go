// Package store persists stackups as semicolon-separated CSV files.
//
// The CSV layout is the interchange format shared with spreadsheet users:
// a header row, one row per layer (index, name, class, thickness, Dk, type)
// with comma decimals, and a trailing total-thickness row. FileStore is the
// concrete implementation of domain.StackupStore; its methods are
// concurrency-safe via internal locking and writes replace the target file
// atomically.
package store
