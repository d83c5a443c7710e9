package ports

import "buildspec/internal/types"

// CompilerEntry is one compiler a CompilerRegistry knows about.
type CompilerEntry struct {
	Name     types.Identifier
	Versions []types.Version
}

// CompilerRegistry answers what compilers and compiler versions exist
// on the target system, used by the concretizer to narrow a compiler a
// spec already names to one known version (spec.md §6). A spec that
// names no compiler is not given one.
type CompilerRegistry interface {
	Compilers() []CompilerEntry
	Suggest(name types.Identifier) []types.Identifier
}
