// SPDX-License-Identifier: MPL-2.0

package modrepo

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"modkit-cli/pkg/version"
)

const sampleManifest = `@{
    RootModule        = 'Sample.psm1'
    ModuleVersion     = '1.2.3'
    GUID              = 'c1a4e6d0-0000-0000-0000-000000000000'
    Author            = 'ops'
    FunctionsToExport = @('Get-Thing')
}
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Sample.psd1")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
	return path
}

func TestManifestVersion(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, sampleManifest)
	v, err := ManifestVersion(path)
	if err != nil {
		t.Fatalf("ManifestVersion: %v", err)
	}
	if v.String() != "1.2.3" {
		t.Errorf("version = %s, want 1.2.3", v)
	}
}

func TestBumpManifestVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		part version.Part
		want string
	}{
		{"patch", version.PartPatch, "1.2.4"},
		{"minor", version.PartMinor, "1.3.0"},
		{"major", version.PartMajor, "2.0.0"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeManifest(t, sampleManifest)
			old, bumped, err := BumpManifestVersion(path, tt.part)
			if err != nil {
				t.Fatalf("BumpManifestVersion: %v", err)
			}
			if old.String() != "1.2.3" {
				t.Errorf("old = %s, want 1.2.3", old)
			}
			if bumped.String() != tt.want {
				t.Errorf("bumped = %s, want %s", bumped, tt.want)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading back: %v", err)
			}
			text := string(data)
			if !strings.Contains(text, "ModuleVersion     = '"+tt.want+"'") {
				t.Errorf("rewritten manifest missing new version:\n%s", text)
			}
			// Only the version value changes.
			if !strings.Contains(text, "RootModule        = 'Sample.psm1'") ||
				!strings.Contains(text, "FunctionsToExport = @('Get-Thing')") {
				t.Errorf("rewrite disturbed surrounding manifest:\n%s", text)
			}
		})
	}
}

func TestBumpManifestVersion_NoEntry(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, "@{ RootModule = 'x.psm1' }\n")
	_, _, err := BumpManifestVersion(path, version.PartPatch)
	if !errors.Is(err, ErrNoModuleVersion) {
		t.Errorf("err = %v, want ErrNoModuleVersion", err)
	}
}
