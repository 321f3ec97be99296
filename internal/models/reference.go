package models

// ReferenceList is a named list of strings loaded from an auxiliary tab
// (trip codes, cities). Available is false when the tab could not be read,
// which callers must not confuse with a confirmed-empty list.
type ReferenceList struct {
	Values    []string `json:"values"`
	Available bool     `json:"-"`
}
