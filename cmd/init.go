package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modstash/modstash/pkg/config"
	"github.com/modstash/modstash/pkg/ui"
	"github.com/modstash/modstash/pkg/vault"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the modstash vault",
	Long: `Initialize the modstash vault directory structure.

This creates the managed vault at ~/.local/share/modstash/ with the following structure:
  - mods/       : One directory per staged mod
  - drops/      : Watched inbox for auto-ingestion
  - cache/      : Generated reports and scratch files
  - config.yaml : Global configuration`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// Create vault instance
	v, err := vault.New()
	if err != nil {
		fmt.Println(ui.FormatError("Failed to determine vault location"))
		return err
	}

	// Check if already initialized
	if v.Exists() {
		fmt.Println(ui.FormatWarning("Vault already initialized"))
		fmt.Println(ui.FormatMuted("Location: " + v.RootPath))
		return nil
	}

	fmt.Println(ui.FormatPackage("Initializing modstash vault..."))
	fmt.Println()

	if err := v.Initialize(); err != nil {
		fmt.Println(ui.FormatError("Failed to initialize vault"))
		return err
	}

	// Create default config
	if err := config.DefaultConfig().Save(v.ConfigPath); err != nil {
		fmt.Println(ui.FormatWarning("Failed to create default config: " + err.Error()))
		// Don't fail - config is optional
	} else {
		fmt.Println(ui.FormatSuccess("Default config created"))
	}

	fmt.Println(ui.FormatSuccess("Vault initialized"))
	fmt.Println(ui.FormatMuted("Location: " + v.RootPath))
	fmt.Println()
	fmt.Println(ui.FormatInfo("Add your first mod with: modstash add SkinPack.vpk --name \"My Mod\""))

	return nil
}
