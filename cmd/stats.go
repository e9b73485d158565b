package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"github.com/modstash/modstash/internal/core/domain"
	"github.com/modstash/modstash/internal/core/services"
	"github.com/modstash/modstash/pkg/preview"
	"github.com/modstash/modstash/pkg/ui"
)

var statsHTML bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show library statistics and activity",
	Long: `Analyze the mod library and display useful statistics.

Includes:
  - Mod and category totals
  - Category distribution bar chart
  - 7-day ingestion activity
  - Custom vs placeholder preview counts

Use --html to also write an interactive chart to the vault cache.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsHTML, "html", false, "Write an HTML chart to the vault cache")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	resp, err := listService.Execute(ctx, services.ListRequest{SortBy: "date"})
	if err != nil {
		return err
	}

	fmt.Println(ui.FormatPackage("Analyzing library..."))

	// 1. Data Aggregation
	totalMods := resp.Total
	categoryCounts := make(map[string]int)
	dateActivity := make(map[string]int) // "YYYY-MM-DD" -> count
	customPreviews := 0

	var newest *domain.ModRecord
	for i := range resp.Mods {
		rec := &resp.Mods[i]

		categoryCounts[string(rec.Meta.Category)]++
		dateActivity[rec.Meta.CreatedAt.Local().Format("2006-01-02")]++

		if rec.Meta.Preview != preview.PlaceholderName {
			customPreviews++
		}

		if newest == nil || rec.Meta.CreatedAt.After(newest.Meta.CreatedAt) {
			newest = rec
		}
	}

	// 2. Render Output
	fmt.Println()
	fmt.Println(ui.FormatTitle("Library Analytics"))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 4, ' ', 0)
	fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("Total Mods:"), totalMods)
	fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("Categories Used:"), len(categoryCounts))
	fmt.Fprintf(w, "%s\t%d of %d\n", ui.StyleBold.Render("Custom Previews:"), customPreviews, totalMods)
	w.Flush()

	fmt.Println()
	renderActivity(dateActivity)

	if newest != nil {
		fmt.Printf("   %s %s (%s)\n",
			ui.StyleMuted.Render("Last added:"),
			newest.Meta.CreatedAt.Local().Format("Jan 02"),
			newest.Meta.Name)
	}
	fmt.Println()

	renderCategoryBars(categoryCounts)

	// 3. Optional interactive chart
	if statsHTML {
		outPath, err := writeStatsChart(categoryCounts, totalMods)
		if err != nil {
			fmt.Println(ui.FormatError("Failed to write chart: " + err.Error()))
			return err
		}
		fmt.Println(ui.FormatSuccess("Chart written to " + outPath))
	}

	return nil
}

// renderActivity prints a GitHub-style ingestion row for the last 7 days
func renderActivity(activity map[string]int) {
	fmt.Println(ui.StyleHeader.Render("Activity (Last 7 Days)"))

	today := time.Now()
	var days []time.Time
	for i := 6; i >= 0; i-- {
		days = append(days, today.AddDate(0, 0, -i))
	}

	var blocks []string
	var labels []string

	for _, day := range days {
		dateStr := day.Format("2006-01-02")
		if activity[dateStr] == 0 {
			blocks = append(blocks, "⬜")
		} else {
			blocks = append(blocks, "🟩")
		}
		labels = append(labels, day.Format("Mon"))
	}

	fmt.Println(strings.Join(blocks, "  "))

	labelRow := ""
	for _, l := range labels {
		labelRow += fmt.Sprintf("%-4s", l)
	}
	fmt.Println(ui.StyleMuted.Render(labelRow))
	fmt.Println()
}

// renderCategoryBars displays a horizontal bar chart of mods per category
func renderCategoryBars(counts map[string]int) {
	if len(counts) == 0 {
		return
	}

	fmt.Println(ui.StyleHeader.Render("Categories"))

	type catPair struct {
		Name  string
		Count int
	}
	var sorted []catPair
	for k, v := range counts {
		sorted = append(sorted, catPair{k, v})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Name < sorted[j].Name
	})

	maxCount := sorted[0].Count
	barWidth := 20

	for _, p := range sorted {
		filled := p.Count * barWidth / maxCount
		if filled < 1 {
			filled = 1
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
		fmt.Printf("  %-12s %s %d\n", p.Name, ui.StyleAccent.Render(bar), p.Count)
	}
	fmt.Println()
}

// writeStatsChart renders the category distribution as an HTML bar chart
// in the vault cache and returns the output path.
func writeStatsChart(counts map[string]int, total int) (string, error) {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	data := make([]opts.BarData, 0, len(names))
	for _, name := range names {
		data = append(data, opts.BarData{Value: counts[name]})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Mod Library",
			Subtitle: fmt.Sprintf("%d mods by category", total),
		}),
	)
	bar.SetXAxis(names).AddSeries("Mods", data)

	outPath := appVault.GetCachePath("stats.html")
	f, err := os.Create(outPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		return "", err
	}
	return outPath, nil
}
