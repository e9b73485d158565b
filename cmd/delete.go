package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modstash/modstash/pkg/ui"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:     "delete [query]",
	Short:   "Delete a mod from the library",
	Aliases: []string{"rm"},
	Long: `Delete a mod: removes its directory from the vault and its
registry entry.

With no arguments, pick interactively from all mods.

Examples:
  modstash delete armor
  modstash delete --yes "old map"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	rec, err := selectMod(args)
	if err != nil || rec == nil {
		return err
	}

	if !deleteYes {
		if !confirm(fmt.Sprintf("Delete %q (%s)?", rec.Meta.Name, rec.Meta.ID)) {
			fmt.Println(ui.FormatMuted("Cancelled"))
			return nil
		}
	}

	if err := os.RemoveAll(rec.Dir); err != nil {
		fmt.Println(ui.FormatError("Failed to remove mod directory"))
		return err
	}

	if err := modRegistry.Delete(ctx, rec.Meta.ID); err != nil && !os.IsNotExist(err) {
		fmt.Println(ui.FormatWarning("Directory removed but registry entry remains: " + err.Error()))
		return nil
	}

	fmt.Println(ui.FormatSuccess("Deleted " + rec.Meta.Name))
	return nil
}
