package core

import "buildspec/internal/types"

// This file implements spec.md §4.3-§4.5: the compiler, variant, and
// spec-level constraint algebra as free functions, shaped after
// golang-dep's gps.Constraint three-method shape
// (Matches/MatchesAny/Intersect — see
// _examples/golang-dep/constraints.go and DESIGN.md), renamed to
// spec.md's vocabulary:
//
//   - Satisfies — does one value meet another's constraint?
//     CompilerSatisfies checks a fully-pinned compiler; SpecSatisfies
//     is the general abstract-vs-abstract relation.
//   - Intersect(a, b) — the pure merge of two constraints, or ok=false
//     if they are disjoint (compiler and variant levels only).
//   - Constrain(target, with) — mutates target in place to the
//     intersection, returning the matching Unsatisfiable*Error on
//     disjoint input (spec.md §7).

// CompilerSatisfies reports whether concrete (a single named compiler
// with a single version) meets constraint (name optionally empty =
// "any compiler", versions optionally open).
func CompilerSatisfies(concrete, constraint types.Compiler, ord VersionOrdering) bool {
	if constraint.Name != "" && concrete.Name != constraint.Name {
		return false
	}
	if len(constraint.Versions.Terms) == 0 {
		return true
	}
	if len(concrete.Versions.Terms) != 1 || concrete.Versions.Terms[0].Kind != types.VersionTermExact {
		return false
	}
	return VersionListSatisfies(constraint.Versions, concrete.Versions.Terms[0].Exact, ord)
}

// compilerOverlaps implements spec.md §4.3's abstract-vs-abstract
// compiler satisfies/overlap relation: same name, and an empty or
// overlapping version list on each side.
func compilerOverlaps(a, b types.Compiler, ord VersionOrdering) bool {
	if a.Name != b.Name {
		return false
	}
	if len(a.Versions.Terms) == 0 || len(b.Versions.Terms) == 0 {
		return true
	}
	_, ok := VersionListIntersect(a.Versions, b.Versions, ord)
	return ok
}

// CompilerIntersect merges two compiler constraints. Differing
// non-empty names are disjoint; version lists intersect per
// VersionListIntersect.
func CompilerIntersect(a, b types.Compiler, ord VersionOrdering) (types.Compiler, bool) {
	name := a.Name
	if name == "" {
		name = b.Name
	} else if b.Name != "" && b.Name != a.Name {
		return types.Compiler{}, false
	}
	versions, ok := VersionListIntersect(a.Versions, b.Versions, ord)
	if !ok {
		return types.Compiler{}, false
	}
	return types.Compiler{Name: name, Versions: versions}, true
}

// CompilerConstrain intersects target with with, mutating target.
// Fails with UnsatisfiableCompilerSpec (spec.md §4.3 `constrain`) when
// the two name different compilers or disjoint version lists.
func CompilerConstrain(name types.Identifier, target *types.Compiler, with types.Compiler, ord VersionOrdering) error {
	merged, ok := CompilerIntersect(*target, with, ord)
	if !ok {
		return &types.UnsatisfiableCompilerSpecError{Name: name, A: *target, B: with}
	}
	*target = merged
	return nil
}

// VariantSatisfies reports whether concrete sets every variant
// constraint explicitly toggled on or off in want. Variants left
// VariantUnset in want impose no requirement.
func VariantSatisfies(concrete, want types.VariantMap) bool {
	for name, state := range want {
		if state == types.VariantUnset {
			continue
		}
		if concrete[name] != state {
			return false
		}
	}
	return true
}

// VariantIntersect merges two variant maps. A variant toggled to
// conflicting states by a and b is disjoint, and the conflicting name
// is returned alongside ok=false; VariantUnset in either side defers
// to the other.
func VariantIntersect(a, b types.VariantMap) (types.VariantMap, types.VariantName, bool) {
	out := make(types.VariantMap, len(a)+len(b))
	for name, state := range a {
		out[name] = state
	}
	for name, state := range b {
		if state == types.VariantUnset {
			continue
		}
		existing, ok := out[name]
		if ok && existing != types.VariantUnset && existing != state {
			return nil, name, false
		}
		out[name] = state
	}
	return out, "", true
}

// VariantConstrain intersects target with with, mutating target.
// Fails with UnsatisfiableVariantSpec (spec.md §4.4) naming the
// conflicting variant when a shared name is toggled both ways.
func VariantConstrain(name types.Identifier, target *types.VariantMap, with types.VariantMap) error {
	merged, bad, ok := VariantIntersect(*target, with)
	if !ok {
		return &types.UnsatisfiableVariantSpecError{Name: name, Variant: bad}
	}
	*target = merged
	return nil
}

// SpecSatisfies reports whether self (the receiver) is at least as
// specific as other: same package name, and for each of versions,
// variants, compiler, and architecture, either side may be absent (no
// constraint) or the attribute-level satisfies relation holds;
// finally, for every dependency name self and other share, the
// receiver's child spec must itself satisfy the other's (spec.md
// §4.5). Used to check the P4 "monotone constrain" property: after
// a.constrain(b) succeeds, a.satisfies(b_original) and
// a.satisfies(a_original).
func SpecSatisfies(self, other *types.Spec, ord VersionOrdering) bool {
	if self.Name != other.Name {
		return false
	}
	if len(other.Versions.Terms) > 0 && !versionListSatisfiesList(self.Versions, other.Versions, ord) {
		return false
	}
	if !VariantSatisfies(self.Variants, other.Variants) {
		return false
	}
	if other.Compiler.Name != "" {
		if self.Compiler.Name == "" || !compilerOverlaps(self.Compiler, other.Compiler, ord) {
			return false
		}
	}
	if other.Architecture != "" && self.Architecture != "" && self.Architecture != other.Architecture {
		return false
	}
	for name, otherDep := range other.Dependencies {
		selfDep, ok := self.Dependencies[name]
		if !ok {
			continue
		}
		if !SpecSatisfies(selfDep, otherDep, ord) {
			return false
		}
	}
	return true
}

// versionListSatisfiesList reports whether every version self can
// represent also satisfies other, the list-level generalization of
// §4.3's versions.overlaps from "shares a version" to "self is
// contained in other". An empty self (unconstrained) cannot be more
// specific than a constrained other.
func versionListSatisfiesList(self, other types.VersionList, ord VersionOrdering) bool {
	if len(self.Terms) == 0 {
		return false
	}
	for _, term := range self.Terms {
		if !termSatisfiesList(term, other, ord) {
			return false
		}
	}
	return true
}

func termSatisfiesList(term types.VersionTerm, other types.VersionList, ord VersionOrdering) bool {
	if term.Kind == types.VersionTermExact {
		return VersionListSatisfies(other, term.Exact, ord)
	}
	for _, ot := range other.Terms {
		if rangeWithinRange(term.Range, termRange(ot), ord) {
			return true
		}
	}
	return false
}

func rangeWithinRange(inner, outer types.VersionRange, ord VersionOrdering) bool {
	if outer.HasLow {
		if !inner.HasLow || ord.Compare(inner.Low, outer.Low) < 0 {
			return false
		}
	}
	if outer.HasHigh {
		if !inner.HasHigh || ord.Compare(inner.High, outer.High) > 0 {
			return false
		}
	}
	return true
}

// SpecConstrain intersects target's own attributes (not its
// dependencies) with with's, mutating target and invalidating its
// concrete cache. Callers merging a dependency DAG use this once per
// shared dependency name; merging the dependency maps themselves is
// the normalizer's flatten step (normalizer.go). Implements spec.md
// §4.5 `constrain`: all conflict conditions are validated before any
// field is written, so an Unsatisfiable* failure leaves target
// untouched. The SpecSatisfies postcondition is checked after the
// write; if it fails, target keeps the merged fields and an
// InconsistentSpecError is returned.
func SpecConstrain(target, with *types.Spec, ord VersionOrdering) error {
	if target.Name != with.Name {
		return &types.ConflictingConstraintsError{
			Name:   target.Name,
			Detail: "cannot constrain specs with different names",
		}
	}
	versions, ok := VersionListIntersect(target.Versions, with.Versions, ord)
	if !ok {
		return &types.UnsatisfiableVersionSpecError{Name: target.Name, A: target.Versions, B: with.Versions}
	}
	variants, bad, ok := VariantIntersect(target.Variants, with.Variants)
	if !ok {
		return &types.UnsatisfiableVariantSpecError{Name: target.Name, Variant: bad}
	}
	compiler, ok := CompilerIntersect(target.Compiler, with.Compiler, ord)
	if !ok {
		return &types.UnsatisfiableCompilerSpecError{Name: target.Name, A: target.Compiler, B: with.Compiler}
	}
	arch := target.Architecture
	if arch == "" {
		arch = with.Architecture
	} else if with.Architecture != "" && with.Architecture != arch {
		return &types.UnsatisfiableArchitectureSpecError{Name: target.Name, A: arch, B: with.Architecture}
	}

	target.Versions = versions
	target.Variants = variants
	target.Compiler = compiler
	target.Architecture = arch
	Invalidate(target)

	if !SpecSatisfies(target, with, ord) {
		return &types.InconsistentSpecError{
			Name: target.Name,
			Err:  &types.ConflictingConstraintsError{Name: target.Name, Detail: "constrain result does not satisfy operand"},
		}
	}
	return nil
}
