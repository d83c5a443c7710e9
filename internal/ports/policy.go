package ports

import "buildspec/internal/types"

// ConcretizationPolicy picks a single version or compiler from a list
// of candidates that already satisfy a spec's constraints. It is the
// pluggable strategy spec.md §9 gestures at ("introduce a policy
// object that can implement alternative strategies"); the default
// greedy behavior described in §4.7 is one implementation of this
// interface (see internal/policies).
type ConcretizationPolicy interface {
	ChooseVersion(name types.Identifier, candidates []types.Version) types.Version
	ChooseCompiler(name types.Identifier, candidates []CompilerEntry) CompilerEntry
}
