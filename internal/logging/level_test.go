// SPDX-License-Identifier: MPL-2.0

package logging

import (
	"errors"
	"testing"
)

func TestLevelOrdering(t *testing.T) {
	t.Parallel()

	ordered := []Level{LevelVerbose, LevelDebug, LevelInformation, LevelWarning, LevelError, LevelCritical}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("expected %s < %s", ordered[i-1], ordered[i])
		}
	}
}

// An event at L1 is suppressed whenever the threshold is above L1 and
// never suppressed when the threshold is at or below L1.
func TestEnabled_TotalOrder(t *testing.T) {
	t.Parallel()

	levels := []Level{LevelVerbose, LevelDebug, LevelInformation, LevelWarning, LevelError, LevelCritical}
	for _, event := range levels {
		for _, threshold := range levels {
			got := event.Enabled(threshold)
			want := event >= threshold
			if got != want {
				t.Errorf("Enabled(%s, threshold %s) = %v, want %v", event, threshold, got, want)
			}
		}
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "Verbose", want: LevelVerbose},
		{in: "debug", want: LevelDebug},
		{in: "INFORMATION", want: LevelInformation},
		{in: "info", want: LevelInformation},
		{in: "warn", want: LevelWarning},
		{in: "ERR", want: LevelError},
		{in: "critical", want: LevelCritical},
		{in: " crt ", want: LevelCritical},
		{in: "fatal", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidLevel) {
				t.Errorf("ParseLevel(%q) error = %v, want ErrInvalidLevel", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLevel(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestLevelTags(t *testing.T) {
	t.Parallel()

	tags := map[Level]string{
		LevelVerbose:     "VRB",
		LevelDebug:       "DBG",
		LevelInformation: "INF",
		LevelWarning:     "WRN",
		LevelError:       "ERR",
		LevelCritical:    "CRT",
	}
	for level, want := range tags {
		if got := level.Tag(); got != want {
			t.Errorf("%s.Tag() = %q, want %q", level, got, want)
		}
	}
}

func TestGate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		level       Level
		cfg         Config
		wantConsole bool
		wantFile    bool
	}{
		{
			name:        "passes both",
			level:       LevelError,
			cfg:         Config{ConsoleMinLevel: LevelInformation, FileMinLevel: LevelVerbose, AppName: "app"},
			wantConsole: true,
			wantFile:    true,
		},
		{
			name:        "console suppressed file active",
			level:       LevelVerbose,
			cfg:         Config{ConsoleMinLevel: LevelInformation, FileMinLevel: LevelVerbose, AppName: "app"},
			wantConsole: false,
			wantFile:    true,
		},
		{
			name:        "file disabled without app name",
			level:       LevelError,
			cfg:         Config{ConsoleMinLevel: LevelInformation, FileMinLevel: LevelVerbose},
			wantConsole: true,
			wantFile:    false,
		},
		{
			name:  "suppressed everywhere",
			level: LevelDebug,
			cfg:   Config{ConsoleMinLevel: LevelError, FileMinLevel: LevelError, AppName: "app"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			toConsole, toFile := gate(tt.level, tt.cfg)
			if toConsole != tt.wantConsole || toFile != tt.wantFile {
				t.Errorf("gate(%s) = (%v, %v), want (%v, %v)",
					tt.level, toConsole, toFile, tt.wantConsole, tt.wantFile)
			}
		})
	}
}

func TestLevelJSONRoundTrip(t *testing.T) {
	t.Parallel()

	for _, level := range []Level{LevelVerbose, LevelDebug, LevelInformation, LevelWarning, LevelError, LevelCritical} {
		data, err := level.MarshalJSON()
		if err != nil {
			t.Fatalf("MarshalJSON(%s) error = %v", level, err)
		}
		var back Level
		if err := back.UnmarshalJSON(data); err != nil {
			t.Fatalf("UnmarshalJSON(%s) error = %v", data, err)
		}
		if back != level {
			t.Errorf("round trip of %s yielded %s", level, back)
		}
	}
}
