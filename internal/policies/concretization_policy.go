// Package policies implements the pluggable ConcretizationPolicy
// strategies spec.md §9 calls for, reshaped from the teacher's
// internal/policies/conflict_policy.go force/relax/replace/block
// directive dispatch into version/compiler selection strategies (see
// DESIGN.md).
package policies

import (
	"buildspec/internal/core"
	"buildspec/internal/ports"
	"buildspec/internal/types"
)

// HighestVersionPolicy always picks the highest candidate — the
// default greedy behavior spec.md §4.7 describes.
type HighestVersionPolicy struct {
	Ordering core.VersionOrdering
}

func (p HighestVersionPolicy) ChooseVersion(_ types.Identifier, candidates []types.Version) types.Version {
	return highest(candidates, p.Ordering)
}

func (p HighestVersionPolicy) ChooseCompiler(_ types.Identifier, candidates []ports.CompilerEntry) ports.CompilerEntry {
	return highestCompiler(candidates, p.Ordering)
}

// PinnedVersionPolicy pins specific packages to specific versions
// (the "force" directive in the teacher's conflict policy), falling
// back to HighestVersionPolicy for anything not pinned or whose pin
// isn't among the candidates.
type PinnedVersionPolicy struct {
	Ordering core.VersionOrdering
	Pins     map[types.Identifier]types.Version
}

func (p PinnedVersionPolicy) ChooseVersion(name types.Identifier, candidates []types.Version) types.Version {
	if pinned, ok := p.Pins[name]; ok {
		for _, c := range candidates {
			if p.Ordering.Compare(c, pinned) == 0 {
				return c
			}
		}
	}
	return highest(candidates, p.Ordering)
}

func (p PinnedVersionPolicy) ChooseCompiler(_ types.Identifier, candidates []ports.CompilerEntry) ports.CompilerEntry {
	return highestCompiler(candidates, p.Ordering)
}

// PreferInstalledPolicy keeps whatever version is already installed
// when it's among the candidates (the "replace" directive's opposite:
// avoid replacing a working install), otherwise falls back to
// highest.
type PreferInstalledPolicy struct {
	Ordering  core.VersionOrdering
	Installed map[types.Identifier]types.Version
}

func (p PreferInstalledPolicy) ChooseVersion(name types.Identifier, candidates []types.Version) types.Version {
	if installed, ok := p.Installed[name]; ok {
		for _, c := range candidates {
			if p.Ordering.Compare(c, installed) == 0 {
				return c
			}
		}
	}
	return highest(candidates, p.Ordering)
}

func (p PreferInstalledPolicy) ChooseCompiler(_ types.Identifier, candidates []ports.CompilerEntry) ports.CompilerEntry {
	return highestCompiler(candidates, p.Ordering)
}

func highest(candidates []types.Version, ord core.VersionOrdering) types.Version {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if ord.Compare(c, best) > 0 {
			best = c
		}
	}
	return best
}

func highestCompiler(candidates []ports.CompilerEntry, ord core.VersionOrdering) ports.CompilerEntry {
	best := candidates[0]
	bestVersion := highest(best.Versions, ord)
	for _, c := range candidates[1:] {
		v := highest(c.Versions, ord)
		if ord.Compare(v, bestVersion) > 0 {
			best = c
			bestVersion = v
		}
	}
	return best
}
