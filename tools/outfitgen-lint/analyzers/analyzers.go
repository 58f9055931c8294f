// Package analyzers provides all custom static analyzers for outfitgen.
package analyzers

import (
	"golang.org/x/tools/go/analysis"

	"github.com/ersonp/outfitgen/tools/outfitgen-lint/analyzers/regexscope"
)

// All returns all analyzers to run.
func All() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		regexscope.Analyzer,
	}
}
