package adapters

import (
	"os"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"buildspec/internal/parser"
	"buildspec/internal/ports"
	"buildspec/internal/types"
)

// recipeFile is the on-disk shape of a PackageRepo's backing store,
// grounded on internal/adapters/spec_file.go's os.ReadFile +
// yaml.Unmarshal pattern and internal/adapters/repo_index_file.go's
// file-backed lookup shape (teacher).
type recipeFile struct {
	Recipes map[string]recipeEntry `yaml:"recipes"`
}

type recipeEntry struct {
	Dependencies []string `yaml:"dependencies"`
	Versions     []string `yaml:"versions"`
}

// PackageRepoFile is a YAML-file-backed ports.PackageRepo.
type PackageRepoFile struct {
	recipes map[types.Identifier]ports.Recipe
	names   []types.Identifier
}

// NewPackageRepoFile loads recipes from a YAML file shaped like:
//
//	recipes:
//	  mpileaks:
//	    dependencies: [mpi, callpath]
//	    versions: ["1.0", "1.1", "2.3"]
func NewPackageRepoFile(path string) (*PackageRepoFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("recipe file not found").
			WithCause(err)
	}
	var parsed recipeFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse recipe yaml").
			WithCause(err)
	}

	repo := &PackageRepoFile{recipes: map[types.Identifier]ports.Recipe{}}
	for name, entry := range parsed.Recipes {
		id := types.Identifier(name)
		recipe := ports.Recipe{Name: id}
		for _, dep := range entry.Dependencies {
			recipe.DependencyNames = append(recipe.DependencyNames, types.Identifier(dep))
		}
		for _, raw := range entry.Versions {
			version, err := parser.ParseVersion(raw)
			if err != nil {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg("invalid version " + raw + " for " + name).
					WithCause(err)
			}
			recipe.AvailableVersions = append(recipe.AvailableVersions, version)
		}
		repo.recipes[id] = recipe
		repo.names = append(repo.names, id)
	}
	sort.Slice(repo.names, func(i, j int) bool { return repo.names[i] < repo.names[j] })
	return repo, nil
}

func (r *PackageRepoFile) Recipe(name types.Identifier) (ports.Recipe, error) {
	recipe, ok := r.recipes[name]
	if !ok {
		return ports.Recipe{}, &types.UnknownPackageError{Name: name}
	}
	return recipe, nil
}

// Suggest returns known package names prefixed by or sharing a prefix
// with name, for "did you mean" hints (internal/app/hints.go).
func (r *PackageRepoFile) Suggest(name types.Identifier) []types.Identifier {
	return suggestFrom(r.names, name)
}

// suggestFrom ranks candidates by shared-prefix length with name,
// longest first, capped at 3 — a simpler stand-in for the teacher's
// hints.go scoring that still favors near-misses over an unsorted
// dump of every known name.
func suggestFrom(candidates []types.Identifier, name types.Identifier) []types.Identifier {
	type scored struct {
		id    types.Identifier
		score int
	}
	var results []scored
	lower := strings.ToLower(string(name))
	for _, c := range candidates {
		score := commonPrefixLen(lower, strings.ToLower(string(c)))
		if score > 0 {
			results = append(results, scored{c, score})
		}
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].score > results[j].score })
	out := make([]types.Identifier, 0, 3)
	for i := 0; i < len(results) && i < 3; i++ {
		out = append(out, results[i].id)
	}
	return out
}

func commonPrefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
