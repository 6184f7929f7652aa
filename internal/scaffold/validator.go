package scaffold

import (
	"fmt"
	"os"

	"github.com/dyluth/nib/internal/config"
)

// CheckExisting checks whether nib.yml or notebook.json already exist.
// Returns an error if they do, nil otherwise.
func CheckExisting() error {
	var existingFiles []string

	for _, path := range []string{config.DefaultPath, NotebookPath} {
		if _, err := os.Stat(path); err == nil {
			existingFiles = append(existingFiles, path)
		}
	}

	if len(existingFiles) > 0 {
		errMsg := "project already initialized\n\nFound existing"
		if len(existingFiles) == 1 {
			errMsg += fmt.Sprintf(": %s", existingFiles[0])
		} else {
			errMsg += " files:\n"
			for _, file := range existingFiles {
				errMsg += fmt.Sprintf("  - %s\n", file)
			}
		}
		errMsg += "\nUse 'nib init --force' to reinitialize (this will overwrite existing files)"

		return fmt.Errorf("%s", errMsg)
	}

	return nil
}
