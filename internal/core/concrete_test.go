package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"buildspec/internal/types"
)

func TestIsConcreteRequiresSingleVersionCompilerAndArch(t *testing.T) {
	spec := &types.Spec{
		Name:         "mpi",
		Versions:     singleVersion(v(t, "3.1.4")),
		Compiler:     types.Compiler{Name: "gcc", Versions: singleVersion(v(t, "9.4.0"))},
		Architecture: "linux-x86_64",
		Dependencies: types.DependencyMap{},
	}
	require.True(t, IsConcrete(spec))

	spec.Architecture = ""
	Invalidate(spec)
	require.False(t, IsConcrete(spec))
}

func TestIsConcreteCachesAndInvalidates(t *testing.T) {
	spec := &types.Spec{
		Name:         "mpi",
		Versions:     singleVersion(v(t, "3.1.4")),
		Compiler:     types.Compiler{Name: "gcc", Versions: singleVersion(v(t, "9.4.0"))},
		Architecture: "linux-x86_64",
		Dependencies: types.DependencyMap{},
	}
	require.True(t, IsConcrete(spec))
	require.NotNil(t, spec.ConcreteCache)

	Invalidate(spec)
	require.Nil(t, spec.ConcreteCache)
}

func TestIsConcreteRequiresConcreteDependencies(t *testing.T) {
	dep := &types.Spec{Name: "mpi", Dependencies: types.DependencyMap{}}
	root := &types.Spec{
		Name:         "mpileaks",
		Versions:     singleVersion(v(t, "1.0")),
		Compiler:     types.Compiler{Name: "gcc", Versions: singleVersion(v(t, "9.4.0"))},
		Architecture: "linux-x86_64",
		Dependencies: types.DependencyMap{"mpi": dep},
	}
	require.False(t, IsConcrete(root))
}
