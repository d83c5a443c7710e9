package types

import "fmt"

// Position is a lexer/parser source location, 1-based, used by
// LexError and ParseError to point at the offending byte in the
// original spec text.
type Position struct {
	Offset int
	Column int
}

// LexError reports an unrecognized character or malformed token.
type LexError struct {
	Pos     Position
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at column %d: %s", e.Pos.Column, e.Message)
}

// ParseError reports a token sequence that does not match the
// grammar (§4.2).
type ParseError struct {
	Pos     Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at column %d: %s", e.Pos.Column, e.Message)
}

// IdentifierError is returned when a '.' appears inside an identifier
// used somewhere other than a version — package, variant, compiler, or
// architecture name (spec.md §3, §9 "Lex/parse separation").
type IdentifierError struct {
	Pos   Position
	Value string
}

func (e *IdentifierError) Error() string {
	return fmt.Sprintf("identifier error at column %d: %q may not contain '.'", e.Pos.Column, e.Value)
}

// DuplicateVariantError is returned by the parser when the same
// variant name is toggled twice in one spec (spec.md §4.2).
type DuplicateVariantError struct {
	Name VariantName
}

func (e *DuplicateVariantError) Error() string {
	return fmt.Sprintf("duplicate variant %q", e.Name)
}

// DuplicateCompilerError is returned by the parser when a second
// compiler clause appears in one spec (spec.md §4.2, §8 scenario 5).
type DuplicateCompilerError struct {
	Name Identifier
}

func (e *DuplicateCompilerError) Error() string {
	return fmt.Sprintf("duplicate compiler clause (already %q)", e.Name)
}

// DuplicateArchitectureError is returned by the parser when a second
// architecture clause appears in one spec (spec.md §4.2).
type DuplicateArchitectureError struct {
	Value string
}

func (e *DuplicateArchitectureError) Error() string {
	return fmt.Sprintf("duplicate architecture clause (already %q)", e.Value)
}

// UnknownPackageError is returned when a spec names a package the
// PackageRepo has no recipe for.
type UnknownPackageError struct {
	Name Identifier
}

func (e *UnknownPackageError) Error() string {
	return fmt.Sprintf("unknown package %q", e.Name)
}

// UnknownCompilerError is returned when a spec's compiler clause names
// a compiler the CompilerRegistry does not know.
type UnknownCompilerError struct {
	Name Identifier
}

func (e *UnknownCompilerError) Error() string {
	return fmt.Sprintf("unknown compiler %q", e.Name)
}

// DuplicateDependencyError is returned by the parser when the same
// dependency name appears twice at the same DAG level (spec.md §4.2).
type DuplicateDependencyError struct {
	Name Identifier
}

func (e *DuplicateDependencyError) Error() string {
	return fmt.Sprintf("duplicate dependency %q", e.Name)
}

// MissingNameError is returned when a spec has no name after parsing.
type MissingNameError struct{}

func (e *MissingNameError) Error() string {
	return "spec has no name"
}

// ConflictingConstraintsError is returned by core.SpecConstrain when
// asked to constrain two specs with different package names, and is
// the wrapped cause inside the InconsistentSpecError that SpecConstrain
// returns when its result fails the satisfies postcondition. Requesters
// is not filled in by either path.
type ConflictingConstraintsError struct {
	Name       Identifier
	Requesters []Identifier
	Detail     string
}

func (e *ConflictingConstraintsError) Error() string {
	return fmt.Sprintf("conflicting constraints on %q from %v: %s", e.Name, e.Requesters, e.Detail)
}

// UnsatisfiableVersionSpecError is returned when two version lists
// being constrained together share no version (spec.md §4.5 step 2).
type UnsatisfiableVersionSpecError struct {
	Name Identifier
	A, B VersionList
}

func (e *UnsatisfiableVersionSpecError) Error() string {
	return fmt.Sprintf("unsatisfiable version spec for %q: %v does not overlap %v", e.Name, e.A, e.B)
}

// UnsatisfiableVariantSpecError is returned when two variant maps
// being constrained together toggle the same name to conflicting
// enabled states (spec.md §4.4, §4.5 step 3).
type UnsatisfiableVariantSpecError struct {
	Name    Identifier
	Variant VariantName
}

func (e *UnsatisfiableVariantSpecError) Error() string {
	return fmt.Sprintf("unsatisfiable variant spec for %q: conflicting toggle on %q", e.Name, e.Variant)
}

// UnsatisfiableCompilerSpecError is returned when two compiler
// constraints name different compilers or have disjoint version lists
// (spec.md §4.3 `constrain`).
type UnsatisfiableCompilerSpecError struct {
	Name Identifier
	A, B Compiler
}

func (e *UnsatisfiableCompilerSpecError) Error() string {
	return fmt.Sprintf("unsatisfiable compiler spec for %q: %+v does not satisfy %+v", e.Name, e.A, e.B)
}

// UnsatisfiableArchitectureSpecError is returned when two specs being
// constrained together both name a non-empty, differing architecture
// (spec.md §4.5 step 4).
type UnsatisfiableArchitectureSpecError struct {
	Name Identifier
	A, B string
}

func (e *UnsatisfiableArchitectureSpecError) Error() string {
	return fmt.Sprintf("unsatisfiable architecture spec for %q: %q does not match %q", e.Name, e.A, e.B)
}

// InconsistentSpecError is returned by core.SpecConstrain (and so by
// the normalizer's flatten step) when the merged spec does not satisfy
// the spec it was constrained with — an internal invariant violation
// rather than one of the Unsatisfiable* conflicts. Callers needing the
// underlying cause should use errors.As/errors.Unwrap past this
// wrapper.
type InconsistentSpecError struct {
	Name Identifier
	Err  error
}

func (e *InconsistentSpecError) Error() string {
	return fmt.Sprintf("inconsistent spec for %q: %s", e.Name, e.Err)
}

func (e *InconsistentSpecError) Unwrap() error {
	return e.Err
}

// ExtraneousDependencyError is returned during normalization when a
// spec names a dependency its recipe does not declare (spec.md §4.6).
type ExtraneousDependencyError struct {
	Parent Identifier
	Name   Identifier
}

func (e *ExtraneousDependencyError) Error() string {
	return fmt.Sprintf("%q is not a dependency of %q", e.Name, e.Parent)
}

// NoCompatibleVersionError is returned by the concretizer when no
// version offered by the PackageRepo satisfies the spec's
// VersionList.
type NoCompatibleVersionError struct {
	Name Identifier
}

func (e *NoCompatibleVersionError) Error() string {
	return fmt.Sprintf("no compatible version for %q", e.Name)
}

// NoCompatibleCompilerError is returned by the concretizer when no
// compiler offered by the CompilerRegistry satisfies the spec's
// Compiler clause.
type NoCompatibleCompilerError struct {
	Name Identifier
}

func (e *NoCompatibleCompilerError) Error() string {
	return fmt.Sprintf("no compatible compiler for %q", e.Name)
}

// CycleError is returned when the dependency DAG contains a cycle,
// detected during flattening or Walk.
type CycleError struct {
	Path []Identifier
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle: %v", e.Path)
}
