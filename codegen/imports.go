package codegen

import (
	"maps"
	"slices"
)

// ImportSet accumulates the Java imports required by one generated
// class. It only grows; construct a fresh set per generated file.
type ImportSet struct {
	names map[string]struct{}
}

// NewImportSet creates an empty import set.
func NewImportSet() *ImportSet {
	return &ImportSet{names: map[string]struct{}{}}
}

// Add records a fully-qualified type name. Duplicate adds are no-ops.
func (s *ImportSet) Add(name string) {
	s.names[name] = struct{}{}
}

// Sorted returns the distinct imports in lexical order, matching the
// layout of a Java import block.
func (s *ImportSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s.names))
}

// Len returns the number of distinct imports recorded so far.
func (s *ImportSet) Len() int {
	return len(s.names)
}
