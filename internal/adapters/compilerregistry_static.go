package adapters

import (
	"buildspec/internal/parser"
	"buildspec/internal/ports"
	"buildspec/internal/types"
)

// CompilerRegistryStatic is a fixed, in-memory ports.CompilerRegistry.
// Grounded on internal/policies/package_policy.go's compiled-pattern-
// table approach, simplified here to an exact name+version set since
// compiler identity (unlike packaging-mode routing) doesn't need
// prefix or wildcard matching (see DESIGN.md).
type CompilerRegistryStatic struct {
	entries []ports.CompilerEntry
}

// NewCompilerRegistryStatic builds a registry from name -> version
// strings, e.g. {"gcc": {"9.4.0", "11.2.0"}, "clang": {"14.0.0"}}.
func NewCompilerRegistryStatic(known map[string][]string) (*CompilerRegistryStatic, error) {
	reg := &CompilerRegistryStatic{}
	for name, versions := range known {
		entry := ports.CompilerEntry{Name: types.Identifier(name)}
		for _, raw := range versions {
			v, err := parser.ParseVersion(raw)
			if err != nil {
				return nil, err
			}
			entry.Versions = append(entry.Versions, v)
		}
		reg.entries = append(reg.entries, entry)
	}
	return reg, nil
}

func (r *CompilerRegistryStatic) Compilers() []ports.CompilerEntry {
	return r.entries
}

func (r *CompilerRegistryStatic) Suggest(name types.Identifier) []types.Identifier {
	names := make([]types.Identifier, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return suggestFrom(names, name)
}
