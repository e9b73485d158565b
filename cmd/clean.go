package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/modstash/modstash/pkg/ui"
)

var cleanOrphans bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean the vault cache and orphaned mod directories",
	Long: `Remove generated files from the vault cache directory.

With --orphans, also remove mod directories under mods/ that have no
registry entry (left behind by interrupted staging or manual edits).

Examples:
  modstash clean             # Wipe the cache directory
  modstash clean --orphans   # Also remove unregistered mod directories`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanOrphans, "orphans", false, "Remove mod directories with no registry entry")
}

func runClean(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	fmt.Print(ui.StyleWarning.Render("Cleaning cache... "))
	if err := appVault.CleanCache(); err != nil {
		fmt.Println(ui.FormatError("Failed"))
		return err
	}
	fmt.Println(ui.FormatSuccess("Done"))

	if !cleanOrphans {
		return nil
	}

	records, err := modRegistry.List(ctx)
	if err != nil {
		return err
	}
	registered := make(map[string]bool, len(records))
	for _, rec := range records {
		registered[rec.Meta.ID] = true
	}

	dirEntries, err := os.ReadDir(appVault.ModsPath)
	if err != nil {
		return err
	}

	removed := 0
	for _, de := range dirEntries {
		if !de.IsDir() || registered[de.Name()] {
			continue
		}
		dir := filepath.Join(appVault.ModsPath, de.Name())
		if err := os.RemoveAll(dir); err != nil {
			fmt.Println(ui.FormatWarning("Could not remove " + dir + ": " + err.Error()))
			continue
		}
		fmt.Println(ui.FormatMuted("Removed orphan: " + de.Name()))
		removed++
	}

	if removed == 0 {
		fmt.Println(ui.FormatInfo("No orphaned mod directories found"))
	} else {
		fmt.Println(ui.FormatSuccess(fmt.Sprintf("Removed %d orphaned director%s", removed, pluralY(removed))))
	}
	return nil
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
