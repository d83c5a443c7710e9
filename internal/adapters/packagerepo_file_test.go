package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"buildspec/internal/types"
)

func writeRecipeFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "recipes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestNewPackageRepoFileLoadsRecipes(t *testing.T) {
	path := writeRecipeFile(t, `
recipes:
  mpileaks:
    dependencies: [mpi, callpath]
    versions: ["1.0", "2.3"]
  mpi:
    dependencies: []
    versions: ["1.0", "2.0"]
`)
	repo, err := NewPackageRepoFile(path)
	require.NoError(t, err)

	recipe, err := repo.Recipe("mpileaks")
	require.NoError(t, err)
	require.Equal(t, []types.Identifier{"mpi", "callpath"}, recipe.DependencyNames)
	require.Len(t, recipe.AvailableVersions, 2)
}

func TestPackageRepoFileRecipeUnknownName(t *testing.T) {
	path := writeRecipeFile(t, "recipes:\n  mpi:\n    dependencies: []\n    versions: []\n")
	repo, err := NewPackageRepoFile(path)
	require.NoError(t, err)

	_, err = repo.Recipe("not-a-package")
	require.Error(t, err)
	var unknown *types.UnknownPackageError
	require.ErrorAs(t, err, &unknown)
}

func TestPackageRepoFileSuggestRanksByPrefix(t *testing.T) {
	path := writeRecipeFile(t, `
recipes:
  mpileaks:
    dependencies: []
    versions: []
  mpich:
    dependencies: []
    versions: []
  zlib:
    dependencies: []
    versions: []
`)
	repo, err := NewPackageRepoFile(path)
	require.NoError(t, err)

	suggestions := repo.Suggest("mpi")
	require.Contains(t, suggestions, types.Identifier("mpileaks"))
	require.Contains(t, suggestions, types.Identifier("mpich"))
	require.NotContains(t, suggestions, types.Identifier("zlib"))
}

func TestNewPackageRepoFileMissingFile(t *testing.T) {
	_, err := NewPackageRepoFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestNewPackageRepoFileInvalidVersion(t *testing.T) {
	path := writeRecipeFile(t, "recipes:\n  mpi:\n    dependencies: []\n    versions: [\"abc\"]\n")
	_, err := NewPackageRepoFile(path)
	require.Error(t, err)
}
