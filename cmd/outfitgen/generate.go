package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ersonp/outfitgen/internal/domain/entities"
	"github.com/ersonp/outfitgen/internal/domain/services"
)

func newMonstersCmd() *cobra.Command {
	return newGenerateCmd(entities.KindMonster, "Generate monsters.xml from all Canary monster .lua files")
}

func newNpcsCmd() *cobra.Command {
	return newGenerateCmd(entities.KindNpc, "Generate npcs.xml from all Canary npc .lua files")
}

func newGenerateCmd(kind entities.Kind, short string) *cobra.Command {
	return &cobra.Command{
		Use:   kind.RootTag() + " <dirs...>",
		Short: short,
		Long: fmt.Sprintf("Scans the given directories recursively for %s scripts and writes %s to the current directory.\n"+
			"A %s defined in more than one file keeps the definition from the directory listed last.",
			kind, kind.DefaultOutputFile(), kind),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, kind, args)
		},
	}
}

func runGenerate(cmd *cobra.Command, kind entities.Kind, dirs []string) error {
	return withDeps(func(d *Deps) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Generating %s ...\n", kind.DefaultOutputFile())

		result, err := d.GenerateHandler.Handle(cmd.Context(), kind, dirs, "")
		if err != nil {
			return err
		}

		printSummary(out, result)
		return nil
	})
}

func printSummary(w io.Writer, result *services.GenerateResult) {
	fmt.Fprintf(w, "XML file has been generated at %s\n", result.OutputFile)

	fmt.Fprintf(w, "%s %s from %s files",
		humanize.Comma(int64(result.Entities)),
		result.Kind.RootTag(),
		humanize.Comma(int64(result.Files)))

	if n := len(result.Skipped); n > 0 {
		fmt.Fprintf(w, ", %s skipped", humanize.Comma(int64(n)))
	}
	if result.Replaced > 0 {
		fmt.Fprintf(w, ", %s overridden", humanize.Comma(int64(result.Replaced)))
	}
	if n := len(result.Dropped); n > 0 {
		fmt.Fprintf(w, ", %s dropped", humanize.Comma(int64(n)))
	}
	if n := len(result.Unreadable); n > 0 {
		fmt.Fprintf(w, ", %s unreadable", humanize.Comma(int64(n)))
	}

	fmt.Fprintln(w)
}
