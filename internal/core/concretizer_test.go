package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"buildspec/internal/ports"
	"buildspec/internal/types"
	"buildspec/tests/testutil"
)

// highestPolicy is a minimal ports.ConcretizationPolicy fixture local to
// this package: internal/policies already depends on core, so importing
// it back from a core test would cycle.
type highestPolicy struct{}

func (highestPolicy) ChooseVersion(_ types.Identifier, candidates []types.Version) types.Version {
	best := candidates[0]
	ord := DottedNumericOrdering{}
	for _, c := range candidates[1:] {
		if ord.Compare(c, best) > 0 {
			best = c
		}
	}
	return best
}

func (highestPolicy) ChooseCompiler(_ types.Identifier, candidates []ports.CompilerEntry) ports.CompilerEntry {
	return candidates[0]
}

func concretizeFixtures() (*testutil.FakeRepo, *testutil.FakeCompilerRegistry, testutil.FakeHostArch) {
	repo := testutil.NewFakeRepo(map[string]struct {
		Deps     []string
		Versions []string
	}{
		"mpileaks": {Deps: []string{"mpi"}, Versions: []string{"1.0"}},
		"mpi":      {Deps: []string{}, Versions: []string{"1.0", "2.0", "3.0"}},
	})
	compilers := testutil.NewFakeCompilerRegistry(map[string][]string{
		"gcc":   {"8.0", "9.4.0", "11.1"},
		"clang": {"12.0"},
	})
	hostArch := testutil.FakeHostArch{Arch: "linux-x86_64"}
	return repo, compilers, hostArch
}

func TestConcretizePicksHighestSatisfyingVersion(t *testing.T) {
	repo, compilers, hostArch := concretizeFixtures()
	root := &types.Spec{
		Name:     "mpileaks",
		Variants: types.VariantMap{},
		Compiler: types.Compiler{Name: "gcc"},
		Dependencies: types.DependencyMap{
			"mpi": {Name: "mpi", Variants: types.VariantMap{}, Dependencies: types.DependencyMap{}},
		},
	}

	require.NoError(t, Concretize(root, repo, compilers, hostArch, highestPolicy{}, DottedNumericOrdering{}))

	require.True(t, VersionListSatisfies(root.Versions, v(t, "1.0"), DottedNumericOrdering{}))
	require.Equal(t, "linux-x86_64", root.Architecture)
	require.Equal(t, types.Identifier("gcc"), root.Compiler.Name)
	require.True(t, VersionListSatisfies(root.Compiler.Versions, v(t, "11.1"), DottedNumericOrdering{}))

	mpi := root.Dependencies["mpi"]
	require.True(t, VersionListSatisfies(mpi.Versions, v(t, "3.0"), DottedNumericOrdering{}))
	require.Equal(t, "linux-x86_64", mpi.Architecture)
}

func TestConcretizeHonorsExistingVersionConstraint(t *testing.T) {
	repo, compilers, hostArch := concretizeFixtures()
	root := &types.Spec{
		Name:     "mpileaks",
		Variants: types.VariantMap{},
		Dependencies: types.DependencyMap{
			"mpi": {
				Name:     "mpi",
				Variants: types.VariantMap{},
				Versions: types.VersionList{Terms: []types.VersionTerm{
					{Kind: types.VersionTermRange, Range: types.VersionRange{High: v(t, "2.0"), HasHigh: true}},
				}},
				Dependencies: types.DependencyMap{},
			},
		},
	}

	require.NoError(t, Concretize(root, repo, compilers, hostArch, highestPolicy{}, DottedNumericOrdering{}))

	mpi := root.Dependencies["mpi"]
	require.True(t, VersionListSatisfies(mpi.Versions, v(t, "2.0"), DottedNumericOrdering{}))
	require.False(t, VersionListSatisfies(mpi.Versions, v(t, "3.0"), DottedNumericOrdering{}))
}

func TestConcretizeRejectsUnsatisfiableVersionConstraint(t *testing.T) {
	repo, compilers, hostArch := concretizeFixtures()
	root := &types.Spec{
		Name:     "mpileaks",
		Variants: types.VariantMap{},
		Versions: types.VersionList{Terms: []types.VersionTerm{{Kind: types.VersionTermExact, Exact: v(t, "9.9")}}},
		Dependencies: types.DependencyMap{
			"mpi": {Name: "mpi", Variants: types.VariantMap{}, Dependencies: types.DependencyMap{}},
		},
	}

	err := Concretize(root, repo, compilers, hostArch, highestPolicy{}, DottedNumericOrdering{})
	require.Error(t, err)
	var noVersion *types.NoCompatibleVersionError
	require.ErrorAs(t, err, &noVersion)
}

func TestConcretizeRejectsUnknownCompilerName(t *testing.T) {
	repo, compilers, hostArch := concretizeFixtures()
	root := &types.Spec{
		Name:         "mpileaks",
		Variants:     types.VariantMap{},
		Compiler:     types.Compiler{Name: "icc"},
		Dependencies: types.DependencyMap{"mpi": {Name: "mpi", Variants: types.VariantMap{}, Dependencies: types.DependencyMap{}}},
	}

	err := Concretize(root, repo, compilers, hostArch, highestPolicy{}, DottedNumericOrdering{})
	require.Error(t, err)
	var unknown *types.UnknownCompilerError
	require.ErrorAs(t, err, &unknown)
}

func TestConcretizeRejectsIncompatibleCompilerVersionConstraint(t *testing.T) {
	repo, compilers, hostArch := concretizeFixtures()
	root := &types.Spec{
		Name:     "mpileaks",
		Variants: types.VariantMap{},
		Compiler: types.Compiler{Name: "gcc", Versions: types.VersionList{Terms: []types.VersionTerm{
			{Kind: types.VersionTermRange, Range: types.VersionRange{Low: v(t, "20.0"), HasLow: true}},
		}}},
		Dependencies: types.DependencyMap{"mpi": {Name: "mpi", Variants: types.VariantMap{}, Dependencies: types.DependencyMap{}}},
	}

	err := Concretize(root, repo, compilers, hostArch, highestPolicy{}, DottedNumericOrdering{})
	require.Error(t, err)
	var noCompiler *types.NoCompatibleCompilerError
	require.ErrorAs(t, err, &noCompiler)
}

func TestConcretizeLeavesCompilerAbsentWhenNotRequested(t *testing.T) {
	repo, compilers, hostArch := concretizeFixtures()
	root := &types.Spec{
		Name:         "mpileaks",
		Variants:     types.VariantMap{},
		Dependencies: types.DependencyMap{"mpi": {Name: "mpi", Variants: types.VariantMap{}, Dependencies: types.DependencyMap{}}},
	}

	require.NoError(t, Concretize(root, repo, compilers, hostArch, highestPolicy{}, DottedNumericOrdering{}))

	require.Empty(t, root.Compiler.Name)
	require.False(t, IsConcrete(root))
}

func TestConcretizePreservesExplicitArchitecture(t *testing.T) {
	repo, compilers, hostArch := concretizeFixtures()
	root := &types.Spec{
		Name:         "mpileaks",
		Variants:     types.VariantMap{},
		Architecture: "darwin-arm64",
		Dependencies: types.DependencyMap{"mpi": {Name: "mpi", Variants: types.VariantMap{}, Dependencies: types.DependencyMap{}}},
	}

	require.NoError(t, Concretize(root, repo, compilers, hostArch, highestPolicy{}, DottedNumericOrdering{}))
	require.Equal(t, "darwin-arm64", root.Architecture)
}
