package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modstash/modstash/internal/core/services"
	"github.com/modstash/modstash/pkg/ui"
)

var (
	listCategory string
	listSortBy   string
	listReverse  bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List all mods in the library",
	Aliases: []string{"ls"},
	Long: `List all staged mods in a table format.

Examples:
  modstash list
  modstash list --category skins
  modstash list --sort name
  modstash list --category maps --reverse`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter mods by category")
	listCmd.Flags().StringVar(&listSortBy, "sort", "date", "Sort by field (date, name, category)")
	listCmd.Flags().BoolVar(&listReverse, "reverse", false, "Reverse sort order")
}

func runList(cmd *cobra.Command, args []string) error {
	// If the flag was NOT changed by the user, use the config default
	if !cmd.Flags().Changed("sort") {
		listSortBy = appConfig.DefaultSort
	}
	if !cmd.Flags().Changed("reverse") {
		listReverse = appConfig.ReverseSort
	}

	req := services.ListRequest{
		Category: listCategory,
		SortBy:   listSortBy,
		Reverse:  listReverse,
	}

	ctx := getContext()
	resp, err := listService.Execute(ctx, req)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to list mods"))
		return err
	}

	// Handle empty results
	if resp.Total == 0 {
		if listCategory != "" {
			fmt.Println(ui.FormatWarning("No mods found in category: " + listCategory))
		} else {
			fmt.Println(ui.FormatWarning("No mods found"))
			fmt.Println(ui.FormatInfo("Add your first mod with: modstash add SkinPack.vpk"))
		}
		return nil
	}

	// Print header
	if listCategory != "" {
		fmt.Println(ui.FormatTitle(fmt.Sprintf("Mods (category: %s)", listCategory)))
	} else {
		fmt.Println(ui.FormatTitle("Mods"))
	}
	fmt.Println()

	// Create table
	table := ui.NewTable([]ui.TableColumn{
		{Header: "Name", Width: 35, Align: "left"},
		{Header: "Category", Width: 10, Align: "left"},
		{Header: "Author", Width: 20, Align: "left"},
		{Header: "Added", Width: 12, Align: "left"},
		{Header: "ID", Width: 20, Align: "left"},
	})

	for _, rec := range resp.Mods {
		table.AddRow([]string{
			truncate(rec.Meta.Name, 35),
			string(rec.Meta.Category),
			truncate(rec.Meta.Author, 20),
			rec.Meta.CreatedAt.Format(appConfig.DisplayDateFormat),
			truncate(rec.Meta.ID, 20),
		})
	}

	fmt.Print(table.Render())
	fmt.Println()
	fmt.Println(ui.FormatMuted(fmt.Sprintf("Total: %d mods", resp.Total)))

	return nil
}
