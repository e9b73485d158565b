package cmd

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/modstash/modstash/pkg/ui"
)

// OpenPath opens a file or directory using a custom file manager or the OS
// default application.
func OpenPath(path string, fileManager string) error {
	var cmd *exec.Cmd

	if fileManager != "" {
		// Use user-configured file manager (e.g. nautilus, dolphin)
		cmd = exec.Command(fileManager, path)
	} else {
		// Fallback to OS default
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", path)
		case "windows":
			cmd = exec.Command("cmd", "/c", "start", path)
		default:
			cmd = exec.Command("xdg-open", path)
		}
	}

	// We use Start() to detach the process so modstash can exit while the
	// file manager stays open
	if err := cmd.Start(); err != nil {
		if fileManager != "" {
			return fmt.Errorf("failed to open '%s' with '%s': %w", path, fileManager, err)
		}
		return fmt.Errorf("failed to open '%s': %w", path, err)
	}

	return nil
}

// confirm prompts the user for a yes/no answer on stdin
func confirm(prompt string) bool {
	fmt.Print(ui.StyleWarning.Render(prompt + " (y/n): "))

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.ToLower(strings.TrimSpace(response)) == "y"
}

// truncate truncates a string to the specified length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
