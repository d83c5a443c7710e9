package ports

// HostArch answers the default target architecture string the
// concretizer fills in when a spec has none (spec.md §6).
type HostArch interface {
	Default() string
}
