// Package core implements the constraint algebra, normalization
// pipeline, and concretizer (spec.md §4.3-§4.7) as free functions over
// types.Spec — the teacher's "types holds data, core holds behavior"
// split (see DESIGN.md).
package core

import "buildspec/internal/types"

// Copy returns a deep copy of spec's subtree. Per spec.md §9's
// documented limitation, Copy does not preserve DAG sharing: if two
// dependencies in the original pointed at the same *Spec, the copy
// gives each an independent clone. Parent pointers in the copy point
// into the copy's own tree, never back into the original.
func Copy(spec *types.Spec) *types.Spec {
	if spec == nil {
		return nil
	}
	return copyWithParent(spec, nil)
}

func copyWithParent(spec *types.Spec, parent *types.Spec) *types.Spec {
	out := &types.Spec{
		Name:         spec.Name,
		Versions:     copyVersionList(spec.Versions),
		Variants:     make(types.VariantMap, len(spec.Variants)),
		Compiler:     types.Compiler{Name: spec.Compiler.Name, Versions: copyVersionList(spec.Compiler.Versions)},
		Architecture: spec.Architecture,
		Dependencies: make(types.DependencyMap, len(spec.Dependencies)),
		Parent:       parent,
	}
	for k, v := range spec.Variants {
		out.Variants[k] = v
	}
	for name, dep := range spec.Dependencies {
		out.Dependencies[name] = copyWithParent(dep, out)
	}
	return out
}

func copyVersionList(v types.VersionList) types.VersionList {
	terms := make([]types.VersionTerm, len(v.Terms))
	copy(terms, v.Terms)
	return types.VersionList{Terms: terms}
}

// Walk visits spec and every dependency reachable from it, preorder,
// depth-first, in a deterministic (name-sorted) order at each level.
// visit returning false stops the walk for that subtree (siblings
// still continue). Walk reports a CycleError if the same *Spec pointer
// is encountered twice on the current path.
func Walk(spec *types.Spec, visit func(*types.Spec) bool) error {
	return walk(spec, visit, nil)
}

func walk(spec *types.Spec, visit func(*types.Spec) bool, path []*types.Spec) error {
	if spec == nil {
		return nil
	}
	for _, ancestor := range path {
		if ancestor == spec {
			names := make([]types.Identifier, 0, len(path)+1)
			for _, a := range path {
				names = append(names, a.Name)
			}
			names = append(names, spec.Name)
			return &types.CycleError{Path: names}
		}
	}
	if !visit(spec) {
		return nil
	}
	for _, name := range SortedDependencyNames(spec) {
		if err := walk(spec.Dependencies[name], visit, append(path, spec)); err != nil {
			return err
		}
	}
	return nil
}

// RootOf walks Parent back-references to the owning root spec.
func RootOf(spec *types.Spec) *types.Spec {
	if spec == nil {
		return nil
	}
	for spec.Parent != nil {
		spec = spec.Parent
	}
	return spec
}

// SortedDependencyNames returns spec's dependency names in
// deterministic (lexical) order, used by Walk, Normalize, and
// Concretize so traversal order never depends on Go's randomized map
// iteration.
func SortedDependencyNames(spec *types.Spec) []types.Identifier {
	names := make([]types.Identifier, 0, len(spec.Dependencies))
	for name := range spec.Dependencies {
		names = append(names, name)
	}
	sortIdentifiers(names)
	return names
}

func sortIdentifiers(names []types.Identifier) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
