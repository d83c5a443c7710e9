package types

// Identifier is a package or compiler name, matching spec.md §3's ID
// token: starts with a letter, digit, or underscore, and continues
// with those plus hyphens (version identifiers may additionally
// contain dots; see shared.ValidateNonVersionIdentifier).
type Identifier string

// VariantName is the name half of a variant toggle (e.g. "shared" in
// "+shared").
type VariantName string
