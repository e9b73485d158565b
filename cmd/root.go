package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modstash/modstash/internal/adapters/repository"
	"github.com/modstash/modstash/internal/core/services"
	"github.com/modstash/modstash/pkg/config"
	"github.com/modstash/modstash/pkg/ui"
	"github.com/modstash/modstash/pkg/vault"
)

var (
	// Global vault instance
	appVault *vault.Vault

	// Global config
	appConfig *config.Config

	// Services
	stageService *services.StageService
	listService  *services.ListService

	// Registry
	modRegistry *repository.FileModRegistry
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "modstash",
	Short: "modstash - A local game mod library",
	Long: ui.StyleTitle.Render("modstash") + " - Mod Library Manager\n\n" +
		"A CLI for ingesting and managing game mods.\n" +
		"Drop in a .vpk, an archive, or a whole folder and modstash stages it\n" +
		"into a normalized mod directory with a preview and metadata.",
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	// Skip initialization for init command
	if cmd.Name() == "init" {
		return nil
	}

	// Create vault instance
	v, err := vault.New()
	if err != nil {
		return fmt.Errorf("failed to initialize vault: %w", err)
	}
	appVault = v

	// Check if vault exists
	if !appVault.Exists() {
		fmt.Println(ui.FormatError("Vault not initialized"))
		fmt.Println(ui.FormatInfo("Run 'modstash init' to initialize the vault"))
		os.Exit(1)
	}

	// Load config
	cfg, err := config.Load(appVault.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	appConfig = cfg
	ui.SetTheme(appConfig.ColorTheme)

	// Initialize registry
	modRegistry = repository.NewFileModRegistry(appVault)
	if err := modRegistry.Load(); err != nil {
		return fmt.Errorf("failed to load mod registry: %w", err)
	}

	// Initialize services
	stageService = services.NewStageService(appVault)
	listService = services.NewListService(modRegistry)

	return nil
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
