package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/modstash/modstash/internal/core/domain"
	"github.com/modstash/modstash/pkg/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Edit the modstash configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := appVault.ConfigPath

		// Ensure it exists
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config file not found at %s", path)
		}

		fmt.Println(ui.FormatInfo("Opening config: " + path))

		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "vi"
		}

		c := exec.Command(editor, path)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		return c.Run()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active configuration",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(ui.FormatTitle("Configuration"))
		fmt.Println()
		fmt.Println(ui.RenderKeyValue("default_category", appConfig.DefaultCategory))
		fmt.Println(ui.RenderKeyValue("default_sort", appConfig.DefaultSort))
		fmt.Println(ui.RenderKeyValue("reverse_sort", strconv.FormatBool(appConfig.ReverseSort)))
		fmt.Println(ui.RenderKeyValue("file_manager", appConfig.FileManager))
		fmt.Println(ui.RenderKeyValue("copy_path_on_add", strconv.FormatBool(appConfig.CopyPathOnAdd)))
		fmt.Println(ui.RenderKeyValue("color_theme", appConfig.ColorTheme))
		fmt.Println(ui.RenderKeyValue("watch_debounce_ms", strconv.Itoa(appConfig.WatchDebounceMS)))
		fmt.Println(ui.RenderKeyValue("watch_remove_drop", strconv.FormatBool(appConfig.WatchRemoveDrop)))
		fmt.Println()
		fmt.Println(ui.FormatMuted("File: " + appVault.ConfigPath))
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a single configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "default_category":
			fmt.Println(appConfig.DefaultCategory)
		case "default_sort":
			fmt.Println(appConfig.DefaultSort)
		case "reverse_sort":
			fmt.Println(strconv.FormatBool(appConfig.ReverseSort))
		case "file_manager":
			fmt.Println(appConfig.FileManager)
		case "copy_path_on_add":
			fmt.Println(strconv.FormatBool(appConfig.CopyPathOnAdd))
		case "color_theme":
			fmt.Println(appConfig.ColorTheme)
		case "watch_debounce_ms":
			fmt.Println(strconv.Itoa(appConfig.WatchDebounceMS))
		case "watch_remove_drop":
			fmt.Println(strconv.FormatBool(appConfig.WatchRemoveDrop))
		default:
			return fmt.Errorf("unknown key %q", args[0])
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and persist it to config.yaml.

Supported keys:
  default_category    ` + domain.CategoriesString() + `
  default_sort        date, name, category
  file_manager        file manager binary, empty for the OS default
  copy_path_on_add    true/false
  watch_remove_drop   true/false`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	switch key {
	case "default_category":
		cat, err := domain.ParseCategory(value)
		if err != nil {
			return fmt.Errorf("invalid category %q (valid: %s)", value, domain.CategoriesString())
		}
		appConfig.DefaultCategory = string(cat)

	case "default_sort":
		switch value {
		case "date", "name", "category":
			appConfig.DefaultSort = value
		default:
			return fmt.Errorf("invalid sort %q (valid: date, name, category)", value)
		}

	case "file_manager":
		appConfig.FileManager = value

	case "copy_path_on_add", "watch_remove_drop", "reverse_sort":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q", value)
		}
		switch key {
		case "copy_path_on_add":
			appConfig.CopyPathOnAdd = b
		case "watch_remove_drop":
			appConfig.WatchRemoveDrop = b
		case "reverse_sort":
			appConfig.ReverseSort = b
		}

	case "watch_debounce_ms":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid duration %q (milliseconds)", value)
		}
		appConfig.WatchDebounceMS = n

	default:
		return fmt.Errorf("unknown key %q", key)
	}

	if err := appConfig.Save(appVault.ConfigPath); err != nil {
		return err
	}

	fmt.Println(ui.FormatSuccess(key + " = " + value))
	return nil
}
