// Package parser implements the recursive-descent parser for spec
// text (spec.md §4.2), grounded on the teacher's
// internal/core/constraint.go token-ordered operator matching
// (generalized here into a full grammar) and cross-checked against
// other_examples' recursive-descent and comma-joined-range parsers
// (see DESIGN.md).
//
// Grammar:
//
//	spec            := ID option* dep*
//	option          := AT version-list            // package/compiler version
//	                  | ON ID | OFF ID             // +variant / -variant
//	                  | PCT ID version-clause?     // compiler, optional version
//	                  | EQ ID                      // =arch
//	version-clause  := AT version-list
//	version-list    := version-term (COMMA version-term)*
//	version-term    := ID (COLON ID?)?
//	                  | COLON ID?
//	dep             := DEP ID option*
//
// Options may appear in any order within one spec (§4.2), but a second
// compiler, architecture, or same-named variant clause is a hard error
// (DuplicateCompilerError, DuplicateArchitectureError,
// DuplicateVariantError). A dependency's own options are parsed the
// same way the root's are, but a dependency never has dependencies of
// its own in the text the user writes — every "^name" after a root is
// a direct, flat entry in that root's DependencyMap (spec.md §4.2
// "each DEP is attached to the most recently parsed root"); any deeper
// DAG structure comes from package recipes during normalization, not
// from parsing. DuplicateDependencyError (two "^name" clauses naming
// the same package under one root) is a parse-time check, not a
// grammar-time one, since the grammar alone can't express "distinct
// names."
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"buildspec/internal/lexer"
	"buildspec/internal/shared"
	"buildspec/internal/types"
)

// Parse lexes and parses spec text into a Spec DAG rooted at the
// returned node's ancestors being nil (it IS the root).
func Parse(input string) (*types.Spec, error) {
	tokens, err := lexer.Lex(input)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	spec, err := p.parseSpecWithDeps(nil)
	if err != nil {
		return nil, err
	}
	if !p.at(lexer.EOF) {
		return nil, p.errorf("unexpected trailing input %q", p.cur().Text)
	}
	return spec, nil
}

type parser struct {
	tokens []lexer.Token
	pos    int
}

func (p *parser) cur() lexer.Token {
	return p.tokens[p.pos]
}

func (p *parser) at(kind lexer.Kind) bool {
	return p.cur().Kind == kind
}

func (p *parser) advance() lexer.Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) expect(kind lexer.Kind) (lexer.Token, error) {
	if !p.at(kind) {
		return lexer.Token{}, p.errorf("expected %s, found %s %q", kind, p.cur().Kind, p.cur().Text)
	}
	return p.advance(), nil
}

// expectIdentifier consumes an ID token and enforces spec.md §3's
// restriction that package, variant, compiler, and architecture names
// (anything but a version) may not contain '.' (§9 "Lex/parse
// separation": the lexer stays context-free, so this check lives
// here).
func (p *parser) expectIdentifier() (lexer.Token, error) {
	tok, err := p.expect(lexer.ID)
	if err != nil {
		return lexer.Token{}, err
	}
	if !shared.ValidateNonVersionIdentifier(tok.Text) {
		return lexer.Token{}, &types.IdentifierError{
			Pos:   types.Position{Offset: tok.Offset, Column: tok.Column},
			Value: tok.Text,
		}
	}
	return tok, nil
}

func (p *parser) errorf(format string, args ...any) error {
	tok := p.cur()
	return &types.ParseError{
		Pos:     types.Position{Offset: tok.Offset, Column: tok.Column},
		Message: fmt.Sprintf(format, args...),
	}
}

// parseSpecWithDeps parses one spec node plus its own flat "^name"
// dependency clauses. parent is the node that introduced this one via
// '^', or nil for the root.
func (p *parser) parseSpecWithDeps(parent *types.Spec) (*types.Spec, error) {
	spec, err := p.parseSpecCore(parent)
	if err != nil {
		return nil, err
	}

	for p.at(lexer.DEP) {
		p.advance()
		dep, err := p.parseSpecCore(spec)
		if err != nil {
			return nil, err
		}
		if _, exists := spec.Dependencies[dep.Name]; exists {
			return nil, &types.DuplicateDependencyError{Name: dep.Name}
		}
		spec.Dependencies[dep.Name] = dep
	}

	return spec, nil
}

// parseSpecCore parses one spec's name and options (AT/ON/OFF/PCT/EQ,
// in any order), but never its dependencies — those are only ever
// attached by parseSpecWithDeps, and only ever flatly, to a root.
func (p *parser) parseSpecCore(parent *types.Spec) (*types.Spec, error) {
	nameTok, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	spec := &types.Spec{
		Name:         types.Identifier(nameTok.Text),
		Variants:     types.VariantMap{},
		Dependencies: types.DependencyMap{},
		Parent:       parent,
	}

	for {
		switch {
		case p.at(lexer.AT):
			versions, err := p.parseVersionClause()
			if err != nil {
				return nil, err
			}
			spec.Versions = versions

		case p.at(lexer.ON) || p.at(lexer.OFF):
			state := types.VariantOn
			if p.at(lexer.OFF) {
				state = types.VariantOff
			}
			p.advance()
			variantTok, err := p.expectIdentifier()
			if err != nil {
				return nil, err
			}
			name := types.VariantName(variantTok.Text)
			if _, exists := spec.Variants[name]; exists {
				return nil, &types.DuplicateVariantError{Name: name}
			}
			spec.Variants[name] = state

		case p.at(lexer.PCT):
			if spec.Compiler.Name != "" {
				return nil, &types.DuplicateCompilerError{Name: spec.Compiler.Name}
			}
			p.advance()
			compilerName, err := p.expectIdentifier()
			if err != nil {
				return nil, err
			}
			compiler := types.Compiler{Name: types.Identifier(compilerName.Text)}
			if p.at(lexer.AT) {
				versions, err := p.parseVersionClause()
				if err != nil {
					return nil, err
				}
				compiler.Versions = versions
			}
			spec.Compiler = compiler

		case p.at(lexer.EQ):
			if spec.Architecture != "" {
				return nil, &types.DuplicateArchitectureError{Value: spec.Architecture}
			}
			p.advance()
			archTok, err := p.expectIdentifier()
			if err != nil {
				return nil, err
			}
			spec.Architecture = archTok.Text

		default:
			return spec, nil
		}
	}
}

func (p *parser) parseVersionClause() (types.VersionList, error) {
	p.advance() // AT
	var list types.VersionList
	for {
		term, err := p.parseVersionTerm()
		if err != nil {
			return types.VersionList{}, err
		}
		list.Terms = append(list.Terms, term)
		if p.at(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	return list, nil
}

func (p *parser) parseVersionTerm() (types.VersionTerm, error) {
	if p.at(lexer.COLON) {
		p.advance()
		if !p.at(lexer.ID) {
			return types.VersionTerm{Kind: types.VersionTermRange, Range: types.VersionRange{}}, nil
		}
		high, err := p.parseVersion()
		if err != nil {
			return types.VersionTerm{}, err
		}
		return types.VersionTerm{
			Kind:  types.VersionTermRange,
			Range: types.VersionRange{High: high, HasHigh: true},
		}, nil
	}

	low, err := p.parseVersion()
	if err != nil {
		return types.VersionTerm{}, err
	}
	if !p.at(lexer.COLON) {
		return types.VersionTerm{Kind: types.VersionTermExact, Exact: low}, nil
	}
	p.advance() // COLON
	rng := types.VersionRange{Low: low, HasLow: true}
	if p.at(lexer.ID) {
		high, err := p.parseVersion()
		if err != nil {
			return types.VersionTerm{}, err
		}
		rng.High = high
		rng.HasHigh = true
	}
	return types.VersionTerm{Kind: types.VersionTermRange, Range: rng}, nil
}

// parseVersion consumes one ID token in version position and parses it
// as dotted-numeric (spec.md §3: only version identifiers may contain
// '.').
func (p *parser) parseVersion() (types.Version, error) {
	tok, err := p.expect(lexer.ID)
	if err != nil {
		return types.Version{}, err
	}
	segments, err := splitSegments(tok.Text)
	if err != nil {
		return types.Version{}, &types.ParseError{
			Pos:     types.Position{Offset: tok.Offset, Column: tok.Column},
			Message: "invalid version segment in " + tok.Text,
		}
	}
	return types.Version{Raw: tok.Text, Segments: segments}, nil
}

// ParseVersion parses a single bare dotted-numeric version token, e.g.
// "1.2.3", with no surrounding spec syntax. Used by adapters that load
// version lists from a recipe file rather than spec text.
func ParseVersion(raw string) (types.Version, error) {
	segments, err := splitSegments(raw)
	if err != nil {
		return types.Version{}, &types.ParseError{Message: "invalid version " + raw}
	}
	return types.Version{Raw: raw, Segments: segments}, nil
}

func splitSegments(raw string) ([]uint64, error) {
	parts := strings.Split(raw, ".")
	segments := make([]uint64, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		n, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, err
		}
		segments = append(segments, n)
	}
	return segments, nil
}
