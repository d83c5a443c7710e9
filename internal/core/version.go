package core

import (
	"github.com/Masterminds/semver"

	"buildspec/internal/types"
)

// VersionOrdering compares two versions, returning -1, 0, or 1. It is
// the pluggable strategy the default dotted-numeric comparison and
// the semver comparison both implement, generalizing the teacher's
// per-DependencyType versionCache.compare dispatch (see
// internal/core/version.go in the teacher) into an interface the
// caller passes to Normalize and Concretize; one ordering applies to
// every package in a run.
type VersionOrdering interface {
	Compare(a, b types.Version) int
}

// DottedNumericOrdering compares Segments lexicographically, treating
// a shorter segment list as zero-padded ("1.2" == "1.2.0"). This is
// the ordering app.NewFileBackedService wires in.
type DottedNumericOrdering struct{}

func (DottedNumericOrdering) Compare(a, b types.Version) int {
	n := len(a.Segments)
	if len(b.Segments) > n {
		n = len(b.Segments)
	}
	for i := 0; i < n; i++ {
		var av, bv uint64
		if i < len(a.Segments) {
			av = a.Segments[i]
		}
		if i < len(b.Segments) {
			bv = b.Segments[i]
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}

// SemverOrdering compares versions using github.com/Masterminds/semver
// (the library golang-dep's gps.Constraint uses, see DESIGN.md),
// for recipes whose versions are strict semver rather than
// arbitrary dotted-numeric strings. Falls back to DottedNumericOrdering
// when either side fails to parse as semver, so a malformed version
// never silently compares equal to everything.
type SemverOrdering struct{}

func (SemverOrdering) Compare(a, b types.Version) int {
	av, aerr := semver.NewVersion(a.Raw)
	bv, berr := semver.NewVersion(b.Raw)
	if aerr != nil || berr != nil {
		return DottedNumericOrdering{}.Compare(a, b)
	}
	return av.Compare(bv)
}

// RangeContains reports whether v falls within r under ord.
func RangeContains(r types.VersionRange, v types.Version, ord VersionOrdering) bool {
	if r.HasLow && ord.Compare(v, r.Low) < 0 {
		return false
	}
	if r.HasHigh && ord.Compare(v, r.High) > 0 {
		return false
	}
	return true
}

// VersionListSatisfies reports whether v matches list under ord. An
// empty list (no terms) is unconstrained and matches any version.
func VersionListSatisfies(list types.VersionList, v types.Version, ord VersionOrdering) bool {
	if len(list.Terms) == 0 {
		return true
	}
	for _, term := range list.Terms {
		switch term.Kind {
		case types.VersionTermExact:
			if ord.Compare(v, term.Exact) == 0 {
				return true
			}
		case types.VersionTermRange:
			if RangeContains(term.Range, v, ord) {
				return true
			}
		}
	}
	return false
}

// VersionListIntersect computes the set intersection of two version
// lists (each a union of terms) as the union of pairwise term
// intersections. Returns ok=false when the intersection is empty,
// i.e. the two lists are disjoint.
func VersionListIntersect(a, b types.VersionList, ord VersionOrdering) (types.VersionList, bool) {
	if len(a.Terms) == 0 {
		return b, true
	}
	if len(b.Terms) == 0 {
		return a, true
	}
	var out types.VersionList
	for _, ta := range a.Terms {
		for _, tb := range b.Terms {
			if term, ok := intersectTerm(ta, tb, ord); ok {
				out.Terms = append(out.Terms, term)
			}
		}
	}
	if len(out.Terms) == 0 {
		return types.VersionList{}, false
	}
	return out, true
}

func intersectTerm(a, b types.VersionTerm, ord VersionOrdering) (types.VersionTerm, bool) {
	if a.Kind == types.VersionTermExact && b.Kind == types.VersionTermExact {
		if ord.Compare(a.Exact, b.Exact) == 0 {
			return types.VersionTerm{Kind: types.VersionTermExact, Exact: a.Exact}, true
		}
		return types.VersionTerm{}, false
	}
	merged, ok := intersectRange(termRange(a), termRange(b), ord)
	if !ok {
		return types.VersionTerm{}, false
	}
	if merged.HasLow && merged.HasHigh && ord.Compare(merged.Low, merged.High) == 0 {
		return types.VersionTerm{Kind: types.VersionTermExact, Exact: merged.Low}, true
	}
	return types.VersionTerm{Kind: types.VersionTermRange, Range: merged}, true
}

func termRange(t types.VersionTerm) types.VersionRange {
	if t.Kind == types.VersionTermExact {
		return types.VersionRange{Low: t.Exact, High: t.Exact, HasLow: true, HasHigh: true}
	}
	return t.Range
}

func intersectRange(a, b types.VersionRange, ord VersionOrdering) (types.VersionRange, bool) {
	var out types.VersionRange
	switch {
	case !a.HasLow && !b.HasLow:
		out.HasLow = false
	case !a.HasLow:
		out.Low, out.HasLow = b.Low, true
	case !b.HasLow:
		out.Low, out.HasLow = a.Low, true
	default:
		if ord.Compare(a.Low, b.Low) >= 0 {
			out.Low, out.HasLow = a.Low, true
		} else {
			out.Low, out.HasLow = b.Low, true
		}
	}
	switch {
	case !a.HasHigh && !b.HasHigh:
		out.HasHigh = false
	case !a.HasHigh:
		out.High, out.HasHigh = b.High, true
	case !b.HasHigh:
		out.High, out.HasHigh = a.High, true
	default:
		if ord.Compare(a.High, b.High) <= 0 {
			out.High, out.HasHigh = a.High, true
		} else {
			out.High, out.HasHigh = b.High, true
		}
	}
	if out.HasLow && out.HasHigh && ord.Compare(out.Low, out.High) > 0 {
		return types.VersionRange{}, false
	}
	return out, true
}

// HighestSatisfying returns the highest version among candidates that
// satisfies list under ord. The concretizer does not call it; it
// filters candidates itself and leaves the choice to its
// ConcretizationPolicy.
func HighestSatisfying(list types.VersionList, candidates []types.Version, ord VersionOrdering) (types.Version, bool) {
	var best types.Version
	found := false
	for _, c := range candidates {
		if !VersionListSatisfies(list, c, ord) {
			continue
		}
		if !found || ord.Compare(c, best) > 0 {
			best = c
			found = true
		}
	}
	return best, found
}
