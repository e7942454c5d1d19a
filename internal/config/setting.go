package config

import "sort"

// Field names looked up in every entry. Lookups are case-sensitive.
const (
	FieldWidth  = "Width"
	FieldHeight = "Height"
	FieldX      = "X"
	FieldY      = "Y"
	FieldRepeat = "Repeat"
)

// WindowSetting is the validated geometry for one process entry.
//
// Repeat is the number of additional placement attempts made after the
// first one.
type WindowSetting struct {
	Width  int
	Height int
	X      int
	Y      int
	Repeat int
}

// Table maps a process name to its window setting.
type Table map[string]WindowSetting

// Names returns the process names in sorted order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
