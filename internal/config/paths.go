// ABOUTME: Standard filesystem paths for terminput configuration
// ABOUTME: Resolves ~/.terminput.json for global and .terminput.json for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const configFileName = ".terminput.json"

// GlobalConfigFile returns the path to the user-global config file.
func GlobalConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", configFileName)
	}
	return filepath.Join(home, configFileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(projectRoot, configFileName)
}
