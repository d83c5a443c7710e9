package types

// DependencyMap holds a spec's direct dependencies keyed by package
// name. Normalization flattens a parsed DAG's transitive dependencies
// into the root's DependencyMap (merging duplicates), so a normalized
// spec's DependencyMap holds every dependency in the DAG, not just the
// ones written at the top level of the spec text.
type DependencyMap map[Identifier]*Spec

// Spec is one node of the dependency DAG described by spec.md §3: a
// package name, a version constraint, a set of variant toggles, an
// optional compiler clause, an optional target architecture, and a
// map of dependency specs.
//
// Parent is a weak back-reference to the spec that introduced this
// node as a dependency; it exists for error messages and Root lookups
// (see core.RootOf) and is never used for ownership — copying a Spec
// does not follow Parent, and Parent is not considered by Satisfies or
// Constrain.
//
// ConcreteCache memoizes whether the spec is fully concrete (every
// attribute pinned to a single value); it is invalidated to nil by any
// core function that mutates the spec and recomputed lazily by
// core.IsConcrete. A nil cache means "unknown, recompute."
type Spec struct {
	Name         Identifier
	Versions     VersionList
	Variants     VariantMap
	Compiler     Compiler
	Architecture string
	Dependencies DependencyMap

	Parent        *Spec
	ConcreteCache *bool
}
