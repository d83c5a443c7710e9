package types

// Version is a parsed dotted version token, e.g. "1.2.3". Raw is kept
// alongside Segments so printing can round-trip exactly what was
// parsed (leading zeros, segment count) without recomputing a string
// form from the numeric segments.
type Version struct {
	Raw      string
	Segments []uint64
}

// VersionRange is a bounded or half-open range written "low:high" in
// spec text. A missing Low means "from the beginning"; a missing High
// means "open ended". Both missing ("@:") matches any version.
type VersionRange struct {
	Low     Version
	High    Version
	HasLow  bool
	HasHigh bool
}

// VersionTermKind distinguishes an exact version from a range inside a
// VersionList.
type VersionTermKind int

const (
	VersionTermExact VersionTermKind = iota
	VersionTermRange
)

// VersionTerm is one comma-separated element of a VersionList.
type VersionTerm struct {
	Kind  VersionTermKind
	Exact Version
	Range VersionRange
}

// VersionList is the (possibly empty) union of exact versions and
// ranges following '@' in a spec, e.g. "@1.0,1.2:1.4,1.6:". An empty
// VersionList (no terms) means "unconstrained" — any version matches.
// Term order is preserved for canonical printing.
type VersionList struct {
	Terms []VersionTerm
}
