package core

import (
	"buildspec/internal/ports"
	"buildspec/internal/types"
)

// Concretize implements spec.md §4.7: greedy, non-backtracking
// concretization of an already-normalized spec. For root and each
// flattened dependency (visited in deterministic name order) it lets
// policy pick one of the available versions satisfying the spec's
// version constraint, narrows an already-named compiler to a single
// version, and fills in the host architecture when none was given. A
// node that names no compiler keeps none. There is no search or
// backtracking: the first compatible choice at each node is taken,
// per spec.md's explicit non-goal of SAT-style concretization.
//
// Grounded on internal/core/resolver.go's version-selection loop
// (teacher), generalized from "pick highest compatible apt/pip
// version" to "pick a compatible version + narrow the named compiler
// + default arch" (see DESIGN.md).
func Concretize(root *types.Spec, repo ports.PackageRepo, compilers ports.CompilerRegistry, hostArch ports.HostArch, policy ports.ConcretizationPolicy, ord VersionOrdering) error {
	if err := concretizeNode(root, repo, compilers, hostArch, policy, ord); err != nil {
		return err
	}
	for _, name := range SortedDependencyNames(root) {
		if err := concretizeNode(root.Dependencies[name], repo, compilers, hostArch, policy, ord); err != nil {
			return err
		}
	}
	Invalidate(root)
	return nil
}

func concretizeNode(spec *types.Spec, repo ports.PackageRepo, compilers ports.CompilerRegistry, hostArch ports.HostArch, policy ports.ConcretizationPolicy, ord VersionOrdering) error {
	recipe, err := repo.Recipe(spec.Name)
	if err != nil {
		return &types.UnknownPackageError{Name: spec.Name}
	}

	var satisfying []types.Version
	for _, v := range recipe.AvailableVersions {
		if VersionListSatisfies(spec.Versions, v, ord) {
			satisfying = append(satisfying, v)
		}
	}
	if len(satisfying) == 0 {
		return &types.NoCompatibleVersionError{Name: spec.Name}
	}
	chosen := policy.ChooseVersion(spec.Name, satisfying)
	spec.Versions = singleVersion(chosen)

	if err := concretizeCompiler(spec, compilers, policy, ord); err != nil {
		return err
	}

	if spec.Architecture == "" {
		spec.Architecture = hostArch.Default()
	}

	Invalidate(spec)
	return nil
}

// concretizeCompiler implements spec.md §4.7 step 3: if spec already
// names a compiler, narrow it to a single concrete version; if none
// was requested, leave the compiler field untouched rather than
// picking one, so top-level concreteness (IsConcrete) correctly
// reports false until the caller supplies one.
func concretizeCompiler(spec *types.Spec, compilers ports.CompilerRegistry, policy ports.ConcretizationPolicy, ord VersionOrdering) error {
	if spec.Compiler.Name == "" {
		return nil
	}

	var nameFound bool
	var candidates []ports.CompilerEntry
	for _, c := range compilers.Compilers() {
		if c.Name != spec.Compiler.Name {
			continue
		}
		nameFound = true
		var versions []types.Version
		for _, v := range c.Versions {
			if VersionListSatisfies(spec.Compiler.Versions, v, ord) {
				versions = append(versions, v)
			}
		}
		if len(versions) == 0 {
			continue
		}
		candidates = append(candidates, ports.CompilerEntry{Name: c.Name, Versions: versions})
	}
	if !nameFound {
		return &types.UnknownCompilerError{Name: spec.Compiler.Name}
	}
	if len(candidates) == 0 {
		return &types.NoCompatibleCompilerError{Name: spec.Name}
	}
	chosen := policy.ChooseCompiler(spec.Name, candidates)
	version := policy.ChooseVersion(spec.Name, chosen.Versions)
	spec.Compiler = types.Compiler{Name: chosen.Name, Versions: singleVersion(version)}
	return nil
}

func singleVersion(v types.Version) types.VersionList {
	return types.VersionList{Terms: []types.VersionTerm{{Kind: types.VersionTermExact, Exact: v}}}
}
