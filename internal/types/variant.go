package types

// VariantState is the tri-state value of a variant toggle: a variant
// never mentioned in a spec is Unset, distinct from explicitly On/Off,
// so "not mentioned" can be told apart from "user turned this off";
// the satisfies/intersect algebra treats Unset as imposing no
// requirement.
type VariantState int

const (
	VariantUnset VariantState = iota
	VariantOn
	VariantOff
)

// VariantMap holds the +name / ~name / -name toggles attached to a
// spec.
type VariantMap map[VariantName]VariantState
