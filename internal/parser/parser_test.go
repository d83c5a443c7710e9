package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"buildspec/internal/types"
)

func TestParseBareName(t *testing.T) {
	spec, err := Parse("mpileaks")
	require.NoError(t, err)
	require.Equal(t, types.Identifier("mpileaks"), spec.Name)
	require.Empty(t, spec.Versions.Terms)
}

func TestParseVersionRangeAndList(t *testing.T) {
	spec, err := Parse("mpileaks@1.0,1.2:1.4,1.6:")
	require.NoError(t, err)
	require.Len(t, spec.Versions.Terms, 3)
	require.Equal(t, types.VersionTermExact, spec.Versions.Terms[0].Kind)
	require.Equal(t, types.VersionTermRange, spec.Versions.Terms[1].Kind)
	require.True(t, spec.Versions.Terms[1].Range.HasLow)
	require.True(t, spec.Versions.Terms[1].Range.HasHigh)
	require.True(t, spec.Versions.Terms[2].Range.HasLow)
	require.False(t, spec.Versions.Terms[2].Range.HasHigh)
}

func TestParseVariantsCompilerArch(t *testing.T) {
	spec, err := Parse("mpileaks+debug~shared%gcc@4.5:4.9=linux-x86_64")
	require.NoError(t, err)
	require.Equal(t, types.VariantOn, spec.Variants["debug"])
	require.Equal(t, types.VariantOff, spec.Variants["shared"])
	require.Equal(t, types.Identifier("gcc"), spec.Compiler.Name)
	require.Len(t, spec.Compiler.Versions.Terms, 1)
	require.Equal(t, "linux-x86_64", spec.Architecture)
}

func TestParseDependencies(t *testing.T) {
	spec, err := Parse("mpileaks ^mpi@2: ^callpath%gcc")
	require.NoError(t, err)
	require.Len(t, spec.Dependencies, 2)
	mpi, ok := spec.Dependencies["mpi"]
	require.True(t, ok)
	require.Same(t, spec, mpi.Parent)
	callpath, ok := spec.Dependencies["callpath"]
	require.True(t, ok)
	require.Equal(t, types.Identifier("gcc"), callpath.Compiler.Name)
}

func TestParseRejectsDuplicateDependency(t *testing.T) {
	spec, err := Parse("a ^b ^c@1.0 ^c@1.0")
	require.Error(t, err)
	var dup *types.DuplicateDependencyError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, types.Identifier("c"), dup.Name)
	_ = spec
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	_, err := Parse("mpileaks $")
	require.Error(t, err)
}

func TestParseRejectsMissingName(t *testing.T) {
	_, err := Parse("@1.0")
	require.Error(t, err)
	var parseErr *types.ParseError
	require.ErrorAs(t, err, &parseErr)
}
