// Package regexscope detects regex compilation outside package-level declarations.
package regexscope

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer reports regexp.Compile/MustCompile calls made inside function bodies.
// Calls inside init functions are allowed.
var Analyzer = &analysis.Analyzer{
	Name:     "regexscope",
	Doc:      "detects regexp.Compile/MustCompile calls inside function bodies; compile patterns in package-level vars",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var regexpFuncs = map[string]bool{
	"Compile":          true,
	"MustCompile":      true,
	"CompilePOSIX":     true,
	"MustCompilePOSIX": true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	inspect.WithStack(nodeFilter, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}

		name, ok := regexpCall(n.(*ast.CallExpr))
		if !ok {
			return true
		}

		if fn := enclosingFunc(stack); fn != "" && fn != "init" {
			pass.Reportf(n.Pos(),
				"regexp.%s called inside %s - compile once in a package-level var",
				name, fn)
		}
		return true
	})

	return nil, nil
}

// regexpCall reports whether call is regexp.<Compile func> and returns the func name.
func regexpCall(call *ast.CallExpr) (string, bool) {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return "", false
	}

	ident, ok := sel.X.(*ast.Ident)
	if !ok || ident.Name != "regexp" || !regexpFuncs[sel.Sel.Name] {
		return "", false
	}
	return sel.Sel.Name, true
}

// enclosingFunc returns the name of the innermost function around the node,
// "func literal" for closures, or "" at package level.
func enclosingFunc(stack []ast.Node) string {
	for i := len(stack) - 1; i >= 0; i-- {
		switch fn := stack[i].(type) {
		case *ast.FuncLit:
			return "func literal"
		case *ast.FuncDecl:
			return fn.Name.Name
		}
	}
	return ""
}
