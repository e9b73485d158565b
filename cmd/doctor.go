package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/modstash/modstash/pkg/metadata"
	"github.com/modstash/modstash/pkg/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the health of the vault",
	Long: `Diagnose issues with the modstash setup.

Checks for:
  - Vault directory integrity (mods, drops, cache)
  - Configuration file existence
  - Registry manifest consistency
  - Orphaned or broken mod directories`,
	Run: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) {
	fmt.Println(ui.FormatTitle("🏥 Modstash Doctor"))
	fmt.Println()

	// 1. Check Vault Structure
	checkStep("Vault Directory", func() error {
		if !appVault.Exists() {
			return fmt.Errorf("not found at %s", appVault.RootPath)
		}
		return nil
	})

	checkStep("Mods Directory", func() error {
		if _, err := os.Stat(appVault.ModsPath); os.IsNotExist(err) {
			return fmt.Errorf("missing at %s", appVault.ModsPath)
		}
		return nil
	})

	checkStep("Drops Directory", func() error {
		if _, err := os.Stat(appVault.DropsPath); os.IsNotExist(err) {
			return fmt.Errorf("missing at %s (required for 'modstash watch')", appVault.DropsPath)
		}
		return nil
	})

	checkStep("Cache Directory", func() error {
		if _, err := os.Stat(appVault.CachePath); os.IsNotExist(err) {
			return fmt.Errorf("missing at %s", appVault.CachePath)
		}
		return nil
	})

	// 2. Check Config
	checkStep("Configuration File", func() error {
		if _, err := os.Stat(appVault.ConfigPath); os.IsNotExist(err) {
			return fmt.Errorf("missing at %s (defaults in effect)", appVault.ConfigPath)
		}
		return nil
	})

	checkStep("Registry Manifest", func() error {
		if _, err := os.Stat(appVault.RegistryPath()); os.IsNotExist(err) {
			return fmt.Errorf("missing (will be created on next add)")
		}
		return nil
	})

	fmt.Println()
	fmt.Println(ui.FormatInfo("Checking library integrity..."))

	// 3. Registry rows must point at real, well-formed mod directories.
	checkStep("Registered Mods", func() error {
		ctx := getContext()
		records, err := modRegistry.List(ctx)
		if err != nil {
			return err
		}

		broken := 0
		for _, rec := range records {
			if _, err := os.Stat(rec.Dir); os.IsNotExist(err) {
				reportBroken(&broken, rec.Meta.ID, "directory missing")
				continue
			}
			if _, err := metadata.Read(rec.Dir); err != nil {
				reportBroken(&broken, rec.Meta.ID, "metadata unreadable: "+err.Error())
				continue
			}
			if rec.Payload != "" {
				payloadPath := filepath.Join(appVault.GetModFilesPath(rec.Meta.ID), rec.Payload)
				if _, err := os.Stat(payloadPath); os.IsNotExist(err) {
					reportBroken(&broken, rec.Meta.ID, "payload missing: "+rec.Payload)
				}
			}
		}

		if broken > 0 {
			return fmt.Errorf("found %d broken mod(s)", broken)
		}
		return nil
	})

	// 4. Mod directories with no registry entry.
	checkStep("Orphaned Directories", func() error {
		ctx := getContext()
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

		orphans := 0
		for _, de := range dirEntries {
			if !de.IsDir() || registered[de.Name()] {
				continue
			}
			if orphans == 0 {
				fmt.Println()
			}
			fmt.Printf("    %s (no registry entry)\n", de.Name())
			orphans++
		}

		if orphans > 0 {
			return fmt.Errorf("found %d orphan(s); run 'modstash clean --orphans'", orphans)
		}
		return nil
	})
}

func reportBroken(count *int, id, reason string) {
	if *count == 0 {
		fmt.Println()
	}
	fmt.Printf("    %s (%s)\n", id, reason)
	*count++
}

// checkStep runs a check function and prints the result nicely
func checkStep(name string, check func() error) {
	err := check()
	if err == nil {
		fmt.Printf("%s %s\n", ui.FormatSuccess("✔"), name)
	} else {
		fmt.Printf("%s %s\n", ui.FormatError("✘"), name)
		fmt.Printf("    %s\n", ui.StyleMuted.Render(err.Error()))
	}
}
