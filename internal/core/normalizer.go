package core

import (
	"buildspec/internal/ports"
	"buildspec/internal/types"
)

// Normalize implements spec.md §4.6 as two independent passes:
//
//  1. flatten — walk root's parsed (possibly deeply nested) dependency
//     DAG and merge every node encountered, at any depth, into a
//     single root-level DependencyMap keyed by name. This pass never
//     looks at any recipe; a name the user wrote under two different
//     ancestors is merged via SpecConstrain regardless of which
//     recipes do or don't declare it.
//  2. complete — walk root's recipe's transitive dependency-name
//     closure (ignoring what the user wrote entirely) and record every
//     name reached. Any name flatten's output doesn't yet have gets a
//     bare (unconstrained) Spec inserted.
//
// Only after both passes finish is a name in flat but outside the
// recipe closure rejected as extraneous. This ordering matters: a
// name the user wrote (e.g. "mpileaks ^mpich ^dyninst", where dyninst
// is declared by callpath's recipe, a dependency of mpileaks, not by
// mpileaks's own recipe) must not be rejected just
// because it doesn't appear in mpileaks's own immediate recipe — only
// names absent from the *closure* are extraneous.
//
// Normalize is idempotent: flattening an already-flat map is a no-op,
// and completion only adds names already covered by the recipe
// closure.
//
// Grounded on internal/core/dependency_builder.go's recursive
// dependency-map construction and internal/core/product_composer.go's
// DAG-flatten-and-merge step (teacher), repurposed from apt/pip
// dependency trees to recipe-guided Spec completion (see DESIGN.md).
func Normalize(root *types.Spec, repo ports.PackageRepo, ord VersionOrdering) error {
	if root.Name == "" {
		return &types.MissingNameError{}
	}
	if _, err := repo.Recipe(root.Name); err != nil {
		return &types.UnknownPackageError{Name: root.Name}
	}

	flat := types.DependencyMap{}
	if err := flattenInto(root, flat, ord, nil); err != nil {
		return err
	}

	visited, err := completeRecipe(root, flat, repo)
	if err != nil {
		return err
	}

	for _, name := range sortedMapNames(flat) {
		if !visited[name] {
			return &types.ExtraneousDependencyError{Parent: root.Name, Name: name}
		}
	}

	root.Dependencies = flat
	Invalidate(root)
	return nil
}

// flattenInto merges every dependency reachable from node, at any
// nesting depth, into flat, keyed by name. A name reached twice is
// merged via SpecConstrain; a disjoint pair of constraints on the same
// name surfaces its Unsatisfiable* error directly, since the conflict
// comes from the user's own text, not from any recipe. path guards
// against a cyclic parse (which Parse itself cannot produce, but
// adapters constructing a Spec DAG by hand could).
func flattenInto(node *types.Spec, flat types.DependencyMap, ord VersionOrdering, path []*types.Spec) error {
	for _, ancestor := range path {
		if ancestor == node {
			names := make([]types.Identifier, 0, len(path)+1)
			for _, a := range path {
				names = append(names, a.Name)
			}
			names = append(names, node.Name)
			return &types.CycleError{Path: names}
		}
	}

	for _, depName := range SortedDependencyNames(node) {
		dep := node.Dependencies[depName]
		if existing, ok := flat[depName]; ok {
			if err := SpecConstrain(existing, dep, ord); err != nil {
				return err
			}
		} else {
			clone := Copy(dep)
			clone.Parent = nil
			clone.Dependencies = types.DependencyMap{}
			flat[depName] = clone
		}
		if err := flattenInto(dep, flat, ord, append(path, node)); err != nil {
			return err
		}
	}
	return nil
}

// completeRecipe walks root's recipe's transitive dependency-name
// closure, recording every name reached in the returned visited set
// and inserting a bare Spec into flat for any name flatten's output
// doesn't already cover.
func completeRecipe(root *types.Spec, flat types.DependencyMap, repo ports.PackageRepo) (map[types.Identifier]bool, error) {
	rootRecipe, err := repo.Recipe(root.Name)
	if err != nil {
		return nil, &types.UnknownPackageError{Name: root.Name}
	}

	queue := append([]types.Identifier{}, rootRecipe.DependencyNames...)
	visited := map[types.Identifier]bool{}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if visited[name] {
			continue
		}
		visited[name] = true

		recipe, err := repo.Recipe(name)
		if err != nil {
			return nil, &types.UnknownPackageError{Name: name}
		}
		if _, ok := flat[name]; !ok {
			flat[name] = &types.Spec{
				Name:         name,
				Variants:     types.VariantMap{},
				Dependencies: types.DependencyMap{},
			}
		}
		queue = append(queue, recipe.DependencyNames...)
	}
	return visited, nil
}

func sortedMapNames(flat types.DependencyMap) []types.Identifier {
	names := make([]types.Identifier, 0, len(flat))
	for name := range flat {
		names = append(names, name)
	}
	sortIdentifiers(names)
	return names
}
