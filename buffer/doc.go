// Package buffer implements the line-oriented document model for hecto.
//
// A Document is an ordered, gap-free sequence of lines. Each line stores
// Unicode scalar values, so columns are 0-based rune offsets, never bytes.
// Edits are single-line: there is no line splitting or joining.
package buffer
