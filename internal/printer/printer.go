// Package printer implements spec.md §4.8: the canonical single-line
// text form (the parser's exact inverse — parse(Print(s)) == s) and
// an indented tree view for human inspection. Grounded on the
// parser's own token vocabulary; no teacher package round-trips
// structured data back to text (see DESIGN.md).
package printer

import (
	"fmt"
	"sort"
	"strings"

	"buildspec/internal/core"
	"buildspec/internal/types"
)

// Print renders spec (and its dependencies, recursively, sorted by
// name) as canonical spec text.
func Print(spec *types.Spec) string {
	var b strings.Builder
	writeNode(&b, spec)
	for _, name := range core.SortedDependencyNames(spec) {
		b.WriteString(" ^")
		b.WriteString(Print(spec.Dependencies[name]))
	}
	return b.String()
}

// writeNode writes spec.md §4.8's canonical order: name, version,
// compiler, variants, architecture.
func writeNode(b *strings.Builder, spec *types.Spec) {
	b.WriteString(string(spec.Name))
	if len(spec.Versions.Terms) > 0 {
		b.WriteString("@")
		b.WriteString(formatVersionList(spec.Versions))
	}
	if spec.Compiler.Name != "" {
		b.WriteString("%")
		b.WriteString(string(spec.Compiler.Name))
		if len(spec.Compiler.Versions.Terms) > 0 {
			b.WriteString("@")
			b.WriteString(formatVersionList(spec.Compiler.Versions))
		}
	}
	for _, name := range sortedVariantNames(spec.Variants) {
		switch spec.Variants[name] {
		case types.VariantOn:
			b.WriteString("+")
			b.WriteString(string(name))
		case types.VariantOff:
			b.WriteString("~")
			b.WriteString(string(name))
		}
	}
	if spec.Architecture != "" {
		b.WriteString("=")
		b.WriteString(spec.Architecture)
	}
}

func formatVersionList(list types.VersionList) string {
	parts := make([]string, len(list.Terms))
	for i, term := range list.Terms {
		parts[i] = formatVersionTerm(term)
	}
	return strings.Join(parts, ",")
}

func formatVersionTerm(term types.VersionTerm) string {
	if term.Kind == types.VersionTermExact {
		return term.Exact.Raw
	}
	r := term.Range
	var low, high string
	if r.HasLow {
		low = r.Low.Raw
	}
	if r.HasHigh {
		high = r.High.Raw
	}
	return low + ":" + high
}

func sortedVariantNames(variants types.VariantMap) []types.VariantName {
	names := make([]types.VariantName, 0, len(variants))
	for name, state := range variants {
		if state != types.VariantUnset {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// PrintTree renders spec as an indented dependency tree, one node per
// line, for human-facing `buildspec print --tree` output.
func PrintTree(spec *types.Spec) string {
	var b strings.Builder
	writeTree(&b, spec, 0)
	return b.String()
}

func writeTree(b *strings.Builder, spec *types.Spec, depth int) {
	b.WriteString(strings.Repeat("    ", depth))
	var line strings.Builder
	writeNode(&line, spec)
	fmt.Fprintln(b, line.String())
	for _, name := range core.SortedDependencyNames(spec) {
		writeTree(b, spec.Dependencies[name], depth+1)
	}
}
