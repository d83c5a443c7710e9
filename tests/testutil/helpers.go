// Package testutil holds fixture builders shared by package-level and
// integration tests: a fake PackageRepo/CompilerRegistry/HostArch, so
// tests don't each hand-roll the same recipe tables.
package testutil

import (
	"sort"
	"strconv"
	"strings"

	"buildspec/internal/ports"
	"buildspec/internal/types"
)

// MustVersion parses a dotted-numeric version string, panicking on a
// malformed fixture (a test bug, not a runtime condition).
func MustVersion(raw string) types.Version {
	var segments []uint64
	for _, part := range strings.Split(raw, ".") {
		n, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			panic("testutil: invalid version fixture " + raw)
		}
		segments = append(segments, n)
	}
	return types.Version{Raw: raw, Segments: segments}
}

// FakeRepo is an in-memory ports.PackageRepo fixture.
type FakeRepo struct {
	Recipes map[types.Identifier]ports.Recipe
}

// NewFakeRepo builds a FakeRepo from name -> (dependency names,
// available version strings) tuples.
func NewFakeRepo(entries map[string]struct {
	Deps     []string
	Versions []string
}) *FakeRepo {
	repo := &FakeRepo{Recipes: map[types.Identifier]ports.Recipe{}}
	for name, entry := range entries {
		recipe := ports.Recipe{Name: types.Identifier(name)}
		for _, dep := range entry.Deps {
			recipe.DependencyNames = append(recipe.DependencyNames, types.Identifier(dep))
		}
		for _, raw := range entry.Versions {
			recipe.AvailableVersions = append(recipe.AvailableVersions, MustVersion(raw))
		}
		repo.Recipes[types.Identifier(name)] = recipe
	}
	return repo
}

func (r *FakeRepo) Recipe(name types.Identifier) (ports.Recipe, error) {
	recipe, ok := r.Recipes[name]
	if !ok {
		return ports.Recipe{}, &types.UnknownPackageError{Name: name}
	}
	return recipe, nil
}

func (r *FakeRepo) Suggest(name types.Identifier) []types.Identifier {
	names := make([]types.Identifier, 0, len(r.Recipes))
	for n := range r.Recipes {
		names = append(names, n)
	}
	return suggestByPrefix(names, name)
}

// FakeCompilerRegistry is an in-memory ports.CompilerRegistry fixture.
type FakeCompilerRegistry struct {
	Entries []ports.CompilerEntry
}

// NewFakeCompilerRegistry builds a registry from name -> version
// strings.
func NewFakeCompilerRegistry(known map[string][]string) *FakeCompilerRegistry {
	reg := &FakeCompilerRegistry{}
	for name, versions := range known {
		entry := ports.CompilerEntry{Name: types.Identifier(name)}
		for _, raw := range versions {
			entry.Versions = append(entry.Versions, MustVersion(raw))
		}
		reg.Entries = append(reg.Entries, entry)
	}
	return reg
}

func (r *FakeCompilerRegistry) Compilers() []ports.CompilerEntry {
	return r.Entries
}

func (r *FakeCompilerRegistry) Suggest(name types.Identifier) []types.Identifier {
	names := make([]types.Identifier, len(r.Entries))
	for i, e := range r.Entries {
		names[i] = e.Name
	}
	return suggestByPrefix(names, name)
}

// suggestByPrefix ranks candidates by shared-prefix length with name,
// longest first — a fixture-local stand-in for
// internal/adapters.suggestFrom so these fakes exercise the same
// "did you mean" shape app.Hints depends on.
func suggestByPrefix(candidates []types.Identifier, name types.Identifier) []types.Identifier {
	type scored struct {
		id    types.Identifier
		score int
	}
	lower := strings.ToLower(string(name))
	var results []scored
	for _, c := range candidates {
		cl := strings.ToLower(string(c))
		n := 0
		for n < len(lower) && n < len(cl) && lower[n] == cl[n] {
			n++
		}
		if n > 0 {
			results = append(results, scored{c, n})
		}
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].score > results[j].score })
	out := make([]types.Identifier, 0, 3)
	for i := 0; i < len(results) && i < 3; i++ {
		out = append(out, results[i].id)
	}
	return out
}

// FakeHostArch is a fixed ports.HostArch fixture.
type FakeHostArch struct {
	Arch string
}

func (h FakeHostArch) Default() string {
	return h.Arch
}
