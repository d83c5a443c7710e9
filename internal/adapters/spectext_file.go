package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// SpecTextFile reads and writes raw spec text files. Grounded on
// internal/adapters/spec_file.go's os.ReadFile pattern (teacher),
// generalized from YAML product manifests to the raw grammar's text
// form (ports.SpecText).
type SpecTextFile struct{}

func NewSpecTextFile() SpecTextFile {
	return SpecTextFile{}
}

func (SpecTextFile) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("spec file not found").
			WithCause(err)
	}
	return string(data), nil
}

func (SpecTextFile) Write(path string, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write spec file").
			WithCause(err)
	}
	return nil
}
