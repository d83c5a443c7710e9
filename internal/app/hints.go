package app

import (
	"errors"
	"fmt"
	"os"

	"buildspec/internal/types"
)

// Hints returns "did you mean" suggestions for an error returned by
// ParseText/Normalize/Concretize, or nil if err carries no
// suggestable name. Grounded on internal/app/hints.go's
// emitHints-to-stderr idiom (teacher), retargeted from CLI-flag
// defaults hints to package/compiler name suggestions.
func (s Service) Hints(err error) []string {
	var unknownPackage *types.UnknownPackageError
	if errors.As(err, &unknownPackage) {
		return suggestionHints(unknownPackage.Name, s.Repo.Suggest(unknownPackage.Name))
	}
	var unknownCompiler *types.UnknownCompilerError
	if errors.As(err, &unknownCompiler) {
		return suggestionHints(unknownCompiler.Name, s.Compilers.Suggest(unknownCompiler.Name))
	}
	return nil
}

func suggestionHints(name types.Identifier, suggestions []types.Identifier) []string {
	if len(suggestions) == 0 {
		return nil
	}
	hints := make([]string, len(suggestions))
	for i, s := range suggestions {
		hints[i] = fmt.Sprintf("hint: %q not found, did you mean %q?", name, s)
	}
	return hints
}

// EmitHints writes hint messages to stderr.
func EmitHints(hints []string) {
	for _, h := range hints {
		fmt.Fprintln(os.Stderr, h)
	}
}
