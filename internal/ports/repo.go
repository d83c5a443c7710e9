// Package ports declares the narrow interfaces spec.md §6 names as
// external collaborators: PackageRepo, CompilerRegistry, and
// HostArch. internal/core consumes these interfaces; lexer, parser,
// and printer never import this package. Only internal/app wires
// concrete adapters behind these interfaces.
package ports

import "buildspec/internal/types"

// Recipe is what a PackageRepo returns for a known package name: the
// set of dependencies a concrete build of that package always has
// (used by the normalizer to complete a spec's DependencyMap) and the
// versions available to concretize against.
type Recipe struct {
	Name              types.Identifier
	DependencyNames   []types.Identifier
	AvailableVersions []types.Version
}

// PackageRepo resolves a package name to its recipe, grounded on the
// teacher's RepoIndexPort (internal/ports/repo.go: AvailableVersions)
// generalized from apt/pip version lookup to a full recipe lookup.
type PackageRepo interface {
	Recipe(name types.Identifier) (Recipe, error)
	Suggest(name types.Identifier) []types.Identifier
}
