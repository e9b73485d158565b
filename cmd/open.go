package cmd

import (
	"fmt"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/modstash/modstash/internal/core/domain"
	"github.com/modstash/modstash/internal/core/services"
	"github.com/modstash/modstash/pkg/ui"
)

// openCmd represents the open command
var openCmd = &cobra.Command{
	Use:   "open [query]",
	Short: "Open a mod directory in your file manager",
	Long: `Open a mod's directory using fuzzy search.

With no arguments, pick interactively from all mods.

Examples:
  modstash open
  modstash open armor
  modstash open "map pack"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOpen,
}

func runOpen(cmd *cobra.Command, args []string) error {
	rec, err := selectMod(args)
	if err != nil || rec == nil {
		return err
	}

	fmt.Println(ui.FormatInfo("Opening " + ui.StyleBold.Render(rec.Meta.Name)))
	return OpenPath(rec.Dir, appConfig.FileManager)
}

// selectMod resolves a mod from an optional query: fuzzy-pick over all
// mods when no query is given, else the best search match. A nil record
// with nil error means the user cancelled or nothing matched.
func selectMod(args []string) (*domain.ModRecord, error) {
	ctx := getContext()

	if len(args) == 0 {
		resp, err := listService.Execute(ctx, services.ListRequest{SortBy: "date"})
		if err != nil {
			return nil, err
		}
		if resp.Total == 0 {
			fmt.Println(ui.FormatWarning("No mods found."))
			return nil, nil
		}

		idx, err := fuzzyfinder.Find(
			resp.Mods,
			func(i int) string { return resp.Mods[i].Meta.Name },
			fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
				if i == -1 {
					return ""
				}
				rec := resp.Mods[i]
				return fmt.Sprintf("%s\n\nCategory: %s\nAuthor: %s\nID: %s\nDir: %s",
					rec.Meta.Name, rec.Meta.Category, rec.Meta.Author, rec.Meta.ID, rec.Dir)
			}),
		)
		if err != nil {
			return nil, nil
		}
		return &resp.Mods[idx], nil
	}

	resp, err := listService.Search(ctx, services.SearchRequest{Query: args[0], Limit: appConfig.MaxSearchResults})
	if err != nil {
		return nil, err
	}
	if resp.Total == 0 {
		fmt.Println(ui.FormatWarning("No mods found matching: " + args[0]))
		return nil, nil
	}
	return &resp.Mods[0], nil
}
