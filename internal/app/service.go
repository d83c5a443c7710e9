// Package app wires internal/ports adapters and internal/core
// algebra into the four user-facing operations (Parse, Normalize,
// Concretize, Print), the way the teacher's app.Service wires its
// adapters into validate/resolve/build/inspect (see DESIGN.md).
package app

import (
	"buildspec/internal/adapters"
	"buildspec/internal/core"
	"buildspec/internal/policies"
	"buildspec/internal/ports"
)

// Service holds everything an operation needs: the external
// collaborators behind their ports, the version ordering strategy,
// and the concretization policy.
type Service struct {
	Repo      ports.PackageRepo
	Compilers ports.CompilerRegistry
	HostArch  ports.HostArch
	SpecText  ports.SpecText
	Policy    ports.ConcretizationPolicy
	Ordering  core.VersionOrdering
}

// NewService assembles a Service from already-constructed
// collaborators — used by tests and by callers wiring their own
// adapters.
func NewService(repo ports.PackageRepo, compilers ports.CompilerRegistry, hostArch ports.HostArch, specText ports.SpecText, policy ports.ConcretizationPolicy, ordering core.VersionOrdering) Service {
	return Service{
		Repo:      repo,
		Compilers: compilers,
		HostArch:  hostArch,
		SpecText:  specText,
		Policy:    policy,
		Ordering:  ordering,
	}
}

// NewFileBackedService wires the default file/static/runtime adapters
// the CLI runs against: a YAML recipe file for PackageRepo, a static
// compiler table, the runtime GOOS/GOARCH for HostArch, and the
// greedy HighestVersionPolicy (spec.md §4.7's default behavior).
// Grounded on the teacher's NewService() convenience constructor
// (internal/app/service.go).
func NewFileBackedService(recipePath string, compilerVersions map[string][]string) (Service, error) {
	repo, err := adapters.NewPackageRepoFile(recipePath)
	if err != nil {
		return Service{}, err
	}
	compilers, err := adapters.NewCompilerRegistryStatic(compilerVersions)
	if err != nil {
		return Service{}, err
	}
	ordering := core.DottedNumericOrdering{}
	return NewService(
		repo,
		compilers,
		adapters.NewHostArchRuntime(),
		adapters.NewSpecTextFile(),
		policies.HighestVersionPolicy{Ordering: ordering},
		ordering,
	), nil
}
