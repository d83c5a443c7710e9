package ports

// SpecText reads and writes spec text to and from a backing store
// (a file, stdin/stdout, ...). Grounded on the teacher's
// ports.ProductSpecPort read/write pair (internal/ports/spec.go),
// generalized from YAML product manifests to the raw spec grammar's
// text form.
type SpecText interface {
	Read(path string) (string, error)
	Write(path string, text string) error
}
