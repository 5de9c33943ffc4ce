// SPDX-License-Identifier: MPL-2.0

package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/spf13/viper"

	"modkit-cli/internal/issue"
	"modkit-cli/pkg/platform"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "modkit"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"

	// maxConfigFileSize caps how much config is read, as a guard against
	// accidentally pointing modkit at a huge file.
	maxConfigFileSize = 1 << 20
)

//go:embed config_schema.cue
var configSchema string

// LoadOptions controls where Load looks for configuration. Zero value
// means the standard locations.
type LoadOptions struct {
	// ConfigFilePath, when set, is used exclusively and must exist.
	ConfigFilePath string
	// ConfigDirPath overrides the platform config directory.
	ConfigDirPath string
}

// ConfigDir returns the modkit configuration directory under the
// platform config root.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	base, err := platform.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName), nil
}

// Load reads configuration from the standard locations.
func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{})
}

// LoadWithOptions loads configuration per opts: defaults first, then the
// config file (validated against the embedded CUE schema) merged on top.
// A missing file in the standard locations is not an error.
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("console_level", defaults.ConsoleLevel)
	v.SetDefault("file_level", defaults.FileLevel)
	v.SetDefault("app_name", defaults.AppName)
	v.SetDefault("use_background_color", defaults.UseBackgroundColor)
	v.SetDefault("overwrite", defaults.Overwrite)
	v.SetDefault("default_runner", defaults.DefaultRunner)
	v.SetDefault("registry_path", defaults.RegistryPath)

	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Use 'modkit config show' to see the defaults").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		if err := loadCUEIntoViper(v, opts.ConfigFilePath); err != nil {
			return nil, wrapLoadError(err, opts.ConfigFilePath)
		}
	} else if path, err := resolveConfigPath(opts.ConfigDirPath); err != nil {
		return nil, err
	} else if path != "" {
		if err := loadCUEIntoViper(v, path); err != nil {
			return nil, wrapLoadError(err, path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Constraints CUE already enforces still get checked here so configs
	// built programmatically fail the same way.
	if _, err := cfg.LogConfig(); err != nil {
		return nil, err
	}
	if _, err := cfg.Runner(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath finds the config file in the standard locations:
// the platform config dir, then the current directory. Empty means no
// config file exists and defaults apply.
func resolveConfigPath(dirOverride string) (string, error) {
	cfgDir := dirOverride
	if cfgDir == "" {
		var err error
		cfgDir, err = ConfigDir()
		if err != nil {
			return "", err
		}
	}

	path := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
	if fileExists(path) {
		return path, nil
	}
	local := ConfigFileName + "." + ConfigFileExt
	if fileExists(local) {
		return local, nil
	}
	return "", nil
}

// loadCUEIntoViper validates a CUE config file against the embedded
// schema and merges the result into viper.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if len(data) > maxConfigFileSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes", path, len(data), maxConfigFileSize)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return formatCUEError(userValue.Err(), path)
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return formatCUEError(err, path)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return formatCUEError(err, path)
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

// formatCUEError flattens a CUE error list into one readable message
// prefixed with the offending file and field path.
func formatCUEError(err error, path string) error {
	cueErrs := cueerrors.Errors(err)
	if len(cueErrs) == 0 {
		return fmt.Errorf("%s: %w", path, err)
	}

	var lines []string
	for _, e := range cueErrs {
		fieldPath := strings.Join(cueerrors.Path(e), ".")
		msg := e.Error()
		if fieldPath != "" && !strings.Contains(msg, fieldPath) {
			msg = fieldPath + ": " + msg
		}
		lines = append(lines, msg)
	}
	if len(lines) == 1 {
		return fmt.Errorf("%s: %s", path, lines[0])
	}
	return fmt.Errorf("%s: validation failed:\n  %s", path, strings.Join(lines, "\n  "))
}

func wrapLoadError(err error, path string) error {
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path).
		WithSuggestion("Check that the file contains valid CUE syntax").
		WithSuggestion("Verify the values against the expected schema").
		Wrap(err).
		BuildError()
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
