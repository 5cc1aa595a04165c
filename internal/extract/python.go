package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/HarshitR2004/GenCoder/internal/catalog"
	"github.com/HarshitR2004/GenCoder/internal/patterns"
)

const solutionFunc = "solution"

// PythonStrategy parses Python snippets into a syntax tree and reads the
// parameter list of the solution function.
type PythonStrategy struct {
	lib *patterns.Library
}

// NewPythonStrategy creates a PythonStrategy. Only languages whose library
// entry declares the python parser are supported.
func NewPythonStrategy(lib *patterns.Library) *PythonStrategy {
	return &PythonStrategy{lib: lib}
}

// Name returns the strategy name.
func (s *PythonStrategy) Name() string {
	return ProvenanceSyntax
}

// Supports reports whether language can be parsed.
func (s *PythonStrategy) Supports(language string) bool {
	return s.lib.Parser(language) == patterns.ParserPython
}

// Extract parses source and classifies the first function named solution.
func (s *PythonStrategy) Extract(language, source string) (Result, error) {
	result := Result{Type: catalog.None, Provenance: ProvenanceSyntax}
	if !s.Supports(language) {
		return result, fmt.Errorf("%w: no syntax parser for %q", ErrUnsupportedLanguage, language)
	}

	src := []byte(source)
	root, closeTree, err := parsePython(src)
	if err != nil {
		perr := &ParseError{Language: language, Message: err.Error()}
		result.Diagnostic = perr.Message
		return result, perr
	}
	defer closeTree()

	fn := findSolution(root, src)
	if fn == nil {
		result.Diagnostic = "no solution function found"
		return result, nil
	}

	result.Parameters = parameters(fn, src)
	result.Type = ClassifyParameters(result.Parameters)
	if result.Detected() {
		result.Confidence = SyntaxConfidence
	}
	return result, nil
}

// parsePython builds a syntax tree for src. A tree containing error or
// missing nodes is reported as invalid syntax at the first such node.
func parsePython(src []byte) (*sitter.Node, func(), error) {
	p := sitter.NewParser()
	defer p.Close()
	p.SetLanguage(python.GetLanguage())

	tree, err := p.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, nil, err
	}
	root := tree.RootNode()
	if root.HasError() {
		msg := "invalid syntax"
		if bad := firstError(root); bad != nil {
			pt := bad.StartPoint()
			msg = fmt.Sprintf("invalid syntax at line %d, column %d", pt.Row+1, pt.Column+1)
		}
		tree.Close()
		return nil, nil, errors.New(msg)
	}
	return root, tree.Close, nil
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil || !child.HasError() && !child.IsMissing() {
			continue
		}
		if bad := firstError(child); bad != nil {
			return bad
		}
	}
	return nil
}

// findSolution returns the first function definition named solution in
// document order, or nil.
func findSolution(n *sitter.Node, src []byte) *sitter.Node {
	if n.Type() == "function_definition" {
		if name := n.ChildByFieldName("name"); name != nil && name.Content(src) == solutionFunc {
			return n
		}
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if fn := findSolution(n.NamedChild(i), src); fn != nil {
			return fn
		}
	}
	return nil
}

// parameters lists the positional parameters of fn, skipping a leading
// method receiver. Keyword-only parameters and splats are not positional.
func parameters(fn *sitter.Node, src []byte) []Parameter {
	list := fn.ChildByFieldName("parameters")
	if list == nil {
		return nil
	}

	var params []Parameter
	for i := 0; i < int(list.NamedChildCount()); i++ {
		node := list.NamedChild(i)
		var name, annotation string
		switch node.Type() {
		case "identifier":
			name = node.Content(src)
		case "typed_parameter":
			ident := node.NamedChild(0)
			if ident == nil || ident.Type() != "identifier" {
				return params
			}
			name = ident.Content(src)
			annotation = typeText(node.ChildByFieldName("type"), src)
		case "default_parameter", "typed_default_parameter":
			ident := node.ChildByFieldName("name")
			if ident == nil || ident.Type() != "identifier" {
				return params
			}
			name = ident.Content(src)
			annotation = typeText(node.ChildByFieldName("type"), src)
		case "positional_separator":
			continue
		default:
			// keyword_separator, list_splat_pattern, dictionary_splat_pattern
			return params
		}
		if len(params) == 0 && i == 0 && (name == "self" || name == "cls") {
			continue
		}
		params = append(params, NewParameter(name, annotation))
	}
	return params
}

func typeText(n *sitter.Node, src []byte) string {
	if n == nil {
		return ""
	}
	return strings.Join(strings.Fields(n.Content(src)), " ")
}
