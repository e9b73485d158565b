package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/modstash/modstash/internal/core/domain"
	"github.com/modstash/modstash/internal/core/services"
	"github.com/modstash/modstash/pkg/ui"
)

var watchQuiet bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the drops directory and ingest new mods",
	Long: `Watch the vault's drops/ directory and automatically ingest
anything placed there.

Files and folders dropped into drops/ are classified and staged the
same way 'modstash add' does it. Mods are named after the dropped
file and filed under the configured default category; use
'modstash config set' to change the category, or edit metadata.json
afterwards.

Ingestion is debounced so large copies settle before being picked up.
Use --quiet to suppress per-mod notifications.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVarP(&watchQuiet, "quiet", "q", false, "Suppress ingest notifications")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(appVault.DropsPath); err != nil {
		return fmt.Errorf("failed to watch drops directory: %w", err)
	}

	if !watchQuiet {
		fmt.Println(ui.FormatPackage("Watching for dropped mods..."))
		fmt.Println(ui.FormatMuted("Drop zone: " + appVault.DropsPath))
		fmt.Println(ui.FormatMuted("Press Ctrl+C to stop"))
		fmt.Println()
	}

	// Debounce so multi-file copies settle before ingestion.
	var debounceTimer *time.Timer
	debounceDuration := time.Duration(appConfig.WatchDebounceMS) * time.Millisecond
	if debounceDuration <= 0 {
		debounceDuration = 500 * time.Millisecond
	}
	pending := false

	// Drops already staged in this session. Default config leaves drops
	// in place, so later events must not re-ingest them.
	ingested := make(map[string]bool)

	doIngest := func() {
		if !pending {
			return
		}
		pending = false
		if err := ingestDrops(ctx, ingested); err != nil {
			log.Printf("Ingest error: %v", err)
		}
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			baseName := filepath.Base(event.Name)
			if strings.HasPrefix(baseName, ".") || strings.HasPrefix(baseName, "~") {
				continue
			}

			if event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Write) ||
				event.Has(fsnotify.Rename) {

				pending = true

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDuration, doIngest)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)

		case <-ctx.Done():
			if !watchQuiet {
				fmt.Println()
				fmt.Println(ui.FormatMuted("Watcher stopped"))
			}
			return nil
		}
	}
}

// ingestDrops stages every recognizable top-level entry currently in
// drops/. Each entry (file or folder) is treated as its own drop. Names
// recorded in ingested are skipped and names staged here are added to it,
// so a drop left in place is ingested exactly once per session.
func ingestDrops(ctx context.Context, ingested map[string]bool) error {
	dirEntries, err := os.ReadDir(appVault.DropsPath)
	if err != nil {
		return err
	}

	for _, de := range dirEntries {
		name := de.Name()
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "~") {
			continue
		}
		if ingested[name] {
			continue
		}
		dropPath := filepath.Join(appVault.DropsPath, name)

		entries, err := entriesFromPaths([]string{dropPath})
		if err != nil {
			if !watchQuiet {
				fmt.Println(ui.FormatWarning("Skipping " + name + ": " + err.Error()))
			}
			continue
		}

		source := services.Classify(entries)
		if _, unrecognized := source.(domain.Unrecognized); unrecognized {
			// Classification is name-based; an unrecognized drop stays
			// unrecognized, so stop rescanning it.
			ingested[name] = true
			continue
		}

		category, err := resolveCategory("")
		if err != nil {
			category = domain.CategoryOther
		}
		resp, err := stageService.Execute(ctx, services.StageRequest{
			Source: source,
			Meta: domain.DraftMetadata{
				Name: domain.NameFromFilename(name),
			},
			Category: category,
		})
		if err != nil {
			if !watchQuiet {
				fmt.Println(ui.FormatError("Failed to stage " + name + ": " + err.Error()))
			}
			continue
		}

		rec := domain.ModRecord{
			Meta: resp.Mod.Meta,
			Dir:  resp.Mod.RootDir,
		}
		if resp.Mod.PayloadPath != "" {
			rec.Payload = filepath.Base(resp.Mod.PayloadPath)
		}
		if err := modRegistry.Save(ctx, rec); err != nil {
			if !watchQuiet {
				fmt.Println(ui.FormatWarning("Staged but not registered: " + err.Error()))
			}
			continue
		}
		ingested[name] = true

		if !watchQuiet {
			for _, w := range resp.Warnings {
				fmt.Println(ui.FormatWarning(w))
			}
			fmt.Println(ui.FormatSuccess(fmt.Sprintf("Ingested %s as %s", name, resp.Mod.Meta.ID)))
		}

		if appConfig.WatchRemoveDrop {
			if err := os.RemoveAll(dropPath); err != nil {
				log.Printf("Failed to remove drop %s: %v", dropPath, err)
			}
		}
	}

	return nil
}
