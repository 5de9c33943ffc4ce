// SPDX-License-Identifier: MPL-2.0

package modrepo

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"modkit-cli/pkg/version"
)

// moduleVersionRe matches the ModuleVersion entry of a module manifest
// (.psd1). The quoted value is captured so the surrounding file is
// preserved byte for byte on rewrite.
var moduleVersionRe = regexp.MustCompile(`(?m)^(\s*ModuleVersion\s*=\s*')([^']+)(')`)

var ErrNoModuleVersion = errors.New("manifest has no ModuleVersion entry")

// ManifestVersion reads the ModuleVersion value from a manifest file.
func ManifestVersion(path string) (version.Version, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return version.Version{}, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	m := moduleVersionRe.FindSubmatch(data)
	if m == nil {
		return version.Version{}, fmt.Errorf("%w: %s", ErrNoModuleVersion, path)
	}
	return version.Parse(string(m[2]))
}

// BumpManifestVersion increments the given version part in the
// manifest and writes the file back. It returns the version before and
// after the bump.
func BumpManifestVersion(path string, part version.Part) (old, bumped version.Version, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return old, bumped, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	m := moduleVersionRe.FindSubmatchIndex(data)
	if m == nil {
		return old, bumped, fmt.Errorf("%w: %s", ErrNoModuleVersion, path)
	}
	old, err = version.Parse(string(data[m[4]:m[5]]))
	if err != nil {
		return old, bumped, err
	}
	bumped, err = old.Bump(part)
	if err != nil {
		return old, bumped, err
	}
	out := make([]byte, 0, len(data))
	out = append(out, data[:m[4]]...)
	out = append(out, bumped.String()...)
	out = append(out, data[m[5]:]...)

	info, err := os.Stat(path)
	if err != nil {
		return old, bumped, fmt.Errorf("stat manifest %s: %w", path, err)
	}
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return old, bumped, fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return old, bumped, nil
}
