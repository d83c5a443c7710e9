package core

import "buildspec/internal/types"

// Invalidate clears spec's ConcreteCache. Every core function that
// mutates a Spec in place (Constrain, the normalizer, the
// concretizer) calls this on the node it changed, matching the
// original Spack Spec's "_concrete is recomputed on any attribute
// write" rule (see DESIGN.md supplemented features).
func Invalidate(spec *types.Spec) {
	spec.ConcreteCache = nil
}

// IsConcrete reports whether spec and every dependency reachable from
// it is fully pinned: exactly one version, a named compiler with
// exactly one compiler version, and a non-empty architecture. The
// result is memoized in spec.ConcreteCache until Invalidate is
// called.
func IsConcrete(spec *types.Spec) bool {
	if spec.ConcreteCache != nil {
		return *spec.ConcreteCache
	}
	result := isConcreteNode(spec)
	if result {
		for _, name := range SortedDependencyNames(spec) {
			if !IsConcrete(spec.Dependencies[name]) {
				result = false
				break
			}
		}
	}
	spec.ConcreteCache = &result
	return result
}

func isConcreteNode(spec *types.Spec) bool {
	if !isSingleVersion(spec.Versions) {
		return false
	}
	if spec.Compiler.Name == "" {
		return false
	}
	if !isSingleVersion(spec.Compiler.Versions) {
		return false
	}
	if spec.Architecture == "" {
		return false
	}
	return true
}

func isSingleVersion(list types.VersionList) bool {
	return len(list.Terms) == 1 && list.Terms[0].Kind == types.VersionTermExact
}
