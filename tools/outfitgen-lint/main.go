// outfitgen-lint is a custom static analyzer for outfitgen extraction rules.
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/ersonp/outfitgen/tools/outfitgen-lint/analyzers"
)

func main() {
	multichecker.Main(analyzers.All()...)
}
