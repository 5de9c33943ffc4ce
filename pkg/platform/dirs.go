// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ErrUnsupportedPlatform is returned when the host OS cannot be classified
// into one of the known platform families (windows, darwin, linux).
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// UserDataDir returns the per-user local application data directory:
// Windows uses %LOCALAPPDATA%, macOS uses ~/Library/Application Support,
// and Linux uses $XDG_DATA_HOME (defaulting to ~/.local/share).
//
// Unknown platforms fail with ErrUnsupportedPlatform before any I/O is
// attempted, so callers can surface the error without partial side effects.
func UserDataDir() (string, error) {
	switch runtime.GOOS {
	case Windows:
		dataDir := os.Getenv("LOCALAPPDATA")
		if dataDir == "" {
			dataDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Local")
		}
		return dataDir, nil
	case Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support"), nil
	case Linux:
		if dataDir := os.Getenv("XDG_DATA_HOME"); dataDir != "" {
			return dataDir, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, ".local", "share"), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, runtime.GOOS)
	}
}

// UserConfigDir returns the per-user configuration directory: Windows uses
// %APPDATA%, macOS uses ~/Library/Application Support, and Linux uses
// $XDG_CONFIG_HOME (defaulting to ~/.config).
func UserConfigDir() (string, error) {
	switch runtime.GOOS {
	case Windows:
		configDir := os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		return configDir, nil
	case Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support"), nil
	case Linux:
		if configDir := os.Getenv("XDG_CONFIG_HOME"); configDir != "" {
			return configDir, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, ".config"), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, runtime.GOOS)
	}
}
