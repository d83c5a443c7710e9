package app

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"buildspec/internal/core"
	"buildspec/internal/parser"
	"buildspec/internal/printer"
	"buildspec/internal/types"
)

// ParseText parses raw spec text into a Spec DAG, grounded on
// internal/app/validate.go's request-validation-then-delegate shape
// (teacher).
func (s Service) ParseText(ctx context.Context, text string) (*types.Spec, error) {
	assert.NotEmpty(ctx, text, "spec text must not be empty")
	log.Ctx(ctx).Debug().Int("length", len(text)).Msg("parsing spec text")
	return parser.Parse(text)
}

// Normalize flattens spec's dependency DAG and recipe-completes it in
// place (spec.md §4.6), grounded on internal/app/resolve.go's
// resolve-operation shape (teacher).
func (s Service) Normalize(ctx context.Context, spec *types.Spec) error {
	log.Ctx(ctx).Debug().Str("name", string(spec.Name)).Msg("normalizing spec")
	return core.Normalize(spec, s.Repo, s.Ordering)
}

// Concretize pins every version and architecture in an
// already-normalized spec, and narrows each compiler the spec already
// names to a single version (spec.md §4.7). A node with no compiler
// keeps none.
func (s Service) Concretize(ctx context.Context, spec *types.Spec) error {
	log.Ctx(ctx).Debug().Str("name", string(spec.Name)).Msg("concretizing spec")
	return core.Concretize(spec, s.Repo, s.Compilers, s.HostArch, s.Policy, s.Ordering)
}

// Print renders spec as canonical text, or as an indented tree when
// tree is true (spec.md §4.8). Grounded on internal/app/inspect.go's
// read-only inspection operation shape (teacher).
func (s Service) Print(ctx context.Context, spec *types.Spec, tree bool) string {
	if tree {
		return printer.PrintTree(spec)
	}
	return printer.Print(spec)
}

// LoadNormalizeConcretize reads spec text from path (via SpecText),
// parses, normalizes, and concretizes it — the end-to-end pipeline
// the CLI's "concretize" command drives.
func (s Service) LoadNormalizeConcretize(ctx context.Context, path string) (*types.Spec, error) {
	text, err := s.SpecText.Read(path)
	if err != nil {
		return nil, err
	}
	spec, err := s.ParseText(ctx, text)
	if err != nil {
		return nil, err
	}
	if err := s.Normalize(ctx, spec); err != nil {
		return nil, err
	}
	if err := s.Concretize(ctx, spec); err != nil {
		return nil, err
	}
	return spec, nil
}
