package curlparser

import (
	"sync"

	"github.com/flosch/pongo2/v6"
)

// templateSet is the process-wide template engine. It holds no per-call
// state, so one lazily-built instance is shared by all concurrent Load calls.
var templateSet = sync.OnceValue(func() *pongo2.TemplateSet {
	return pongo2.NewSet("curl-parser", pongo2.DefaultLoader)
})

// render substitutes {{ name }} placeholders (dotted paths included) in input
// against context. Substitution is purely textual; the rendered output goes
// back through the lexer as ordinary curl syntax.
func render(input string, context map[string]any) (string, error) {
	tpl, err := templateSet().FromString(input)
	if err != nil {
		return "", &RenderError{Err: err}
	}

	if context == nil {
		context = map[string]any{}
	}
	out, err := tpl.Execute(pongo2.Context(context))
	if err != nil {
		return "", &RenderError{Err: err}
	}
	return out, nil
}
