package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"buildspec/internal/types"
)

func TestCompilerSatisfies(t *testing.T) {
	ord := DottedNumericOrdering{}
	concrete := types.Compiler{Name: "gcc", Versions: singleVersion(v(t, "9.4.0"))}
	constraint := types.Compiler{Name: "gcc", Versions: types.VersionList{Terms: []types.VersionTerm{
		{Kind: types.VersionTermRange, Range: types.VersionRange{Low: v(t, "9.0"), HasLow: true}},
	}}}
	require.True(t, CompilerSatisfies(concrete, constraint, ord))

	constraint.Name = "clang"
	require.False(t, CompilerSatisfies(concrete, constraint, ord))
}

func TestCompilerConstrainConflict(t *testing.T) {
	ord := DottedNumericOrdering{}
	target := types.Compiler{Name: "gcc"}
	err := CompilerConstrain("mpileaks", &target, types.Compiler{Name: "clang"}, ord)
	require.Error(t, err)
	var conflict *types.UnsatisfiableCompilerSpecError
	require.ErrorAs(t, err, &conflict)
}

func TestVariantSatisfiesIgnoresUnset(t *testing.T) {
	concrete := types.VariantMap{"debug": types.VariantOn, "shared": types.VariantOff}
	want := types.VariantMap{"debug": types.VariantOn}
	require.True(t, VariantSatisfies(concrete, want))

	want["shared"] = types.VariantOn
	require.False(t, VariantSatisfies(concrete, want))
}

func TestVariantIntersectConflict(t *testing.T) {
	a := types.VariantMap{"debug": types.VariantOn}
	b := types.VariantMap{"debug": types.VariantOff}
	_, bad, ok := VariantIntersect(a, b)
	require.False(t, ok)
	require.Equal(t, types.VariantName("debug"), bad)
}

func TestSpecConstrainMergesAttributes(t *testing.T) {
	ord := DottedNumericOrdering{}
	target := &types.Spec{
		Name:     "mpi",
		Versions: types.VersionList{Terms: []types.VersionTerm{{Kind: types.VersionTermRange, Range: types.VersionRange{Low: v(t, "1.0"), HasLow: true}}}},
		Variants: types.VariantMap{},
	}
	with := &types.Spec{
		Name:     "mpi",
		Versions: types.VersionList{Terms: []types.VersionTerm{{Kind: types.VersionTermRange, Range: types.VersionRange{High: v(t, "3.0"), HasHigh: true}}}},
		Variants: types.VariantMap{"fabrics": types.VariantOn},
	}
	require.NoError(t, SpecConstrain(target, with, ord))
	require.True(t, VersionListSatisfies(target.Versions, v(t, "2.0"), ord))
	require.Equal(t, types.VariantOn, target.Variants["fabrics"])
	require.Nil(t, target.ConcreteCache)
}

func TestSpecConstrainNameMismatch(t *testing.T) {
	ord := DottedNumericOrdering{}
	target := &types.Spec{Name: "mpi", Variants: types.VariantMap{}}
	with := &types.Spec{Name: "openmpi", Variants: types.VariantMap{}}
	err := SpecConstrain(target, with, ord)
	require.Error(t, err)
}

func TestSpecSatisfiesRequiresSameNameAndAttributes(t *testing.T) {
	ord := DottedNumericOrdering{}
	concrete := &types.Spec{
		Name:     "mpi",
		Versions: singleVersion(v(t, "3.0")),
		Compiler: types.Compiler{Name: "gcc", Versions: singleVersion(v(t, "9.4.0"))},
		Variants: types.VariantMap{"fabrics": types.VariantOn},
	}
	constraint := &types.Spec{
		Name:     "mpi",
		Versions: types.VersionList{Terms: []types.VersionTerm{{Kind: types.VersionTermRange, Range: types.VersionRange{Low: v(t, "2.0"), HasLow: true}}}},
		Compiler: types.Compiler{Name: "gcc"},
		Variants: types.VariantMap{"fabrics": types.VariantOn},
	}
	require.True(t, SpecSatisfies(concrete, constraint, ord))

	constraint.Name = "openmpi"
	require.False(t, SpecSatisfies(concrete, constraint, ord))
}

func TestSpecSatisfiesRecursesIntoSharedDependencies(t *testing.T) {
	ord := DottedNumericOrdering{}
	concrete := &types.Spec{
		Name:     "mpileaks",
		Variants: types.VariantMap{},
		Dependencies: types.DependencyMap{
			"mpi": {Name: "mpi", Variants: types.VariantMap{}, Versions: singleVersion(v(t, "3.0"))},
		},
	}
	constraint := &types.Spec{
		Name:     "mpileaks",
		Variants: types.VariantMap{},
		Dependencies: types.DependencyMap{
			"mpi": {Name: "mpi", Variants: types.VariantMap{}, Versions: types.VersionList{Terms: []types.VersionTerm{
				{Kind: types.VersionTermRange, Range: types.VersionRange{High: v(t, "2.0"), HasHigh: true}},
			}}},
		},
	}
	require.False(t, SpecSatisfies(concrete, constraint, ord))
}
