package domain

import "fmt"

// ExportingEntry pairs a build unit with one of its output groups that publishes at
// least one artifact key. Entries compare by value: unit path first, then group name.
type ExportingEntry struct {
	Unit   InternedString
	Output InternedString
}

// NewExportingEntry creates an entry for the given unit path and output group name.
func NewExportingEntry(unit, output string) ExportingEntry {
	return ExportingEntry{
		Unit:   NewInternedString(unit),
		Output: NewInternedString(output),
	}
}

// Compare orders entries by unit path, then by output group name.
// The smallest entry wins whenever a lookup yields several candidates.
func (e ExportingEntry) Compare(other ExportingEntry) int {
	if c := e.Unit.Compare(other.Unit); c != 0 {
		return c
	}
	return e.Output.Compare(other.Output)
}

// String returns unit(output).
func (e ExportingEntry) String() string {
	return fmt.Sprintf("%s(%s)", e.Unit.String(), e.Output.String())
}
