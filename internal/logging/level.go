// SPDX-License-Identifier: MPL-2.0

package logging

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Level represents the severity of a log event. Levels are totally
// ordered; an event reaches a sink when its level is >= that sink's
// minimum level.
type Level int

const (
	// LevelVerbose is for noisy tracing output.
	LevelVerbose Level = iota
	// LevelDebug is for diagnostic information.
	LevelDebug
	// LevelInformation is for normal operational events.
	LevelInformation
	// LevelWarning is for unexpected conditions that don't prevent operation.
	LevelWarning
	// LevelError is for failures that affect functionality.
	LevelError
	// LevelCritical is for failures that abort the surrounding operation.
	LevelCritical
)

// ErrInvalidLevel is returned when a level string is not recognized.
var ErrInvalidLevel = fmt.Errorf("invalid log level")

// String returns the full level name.
func (l Level) String() string {
	switch l {
	case LevelVerbose:
		return "Verbose"
	case LevelDebug:
		return "Debug"
	case LevelInformation:
		return "Information"
	case LevelWarning:
		return "Warning"
	case LevelError:
		return "Error"
	case LevelCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// Tag returns the three-letter tag embedded in rendered lines.
func (l Level) Tag() string {
	switch l {
	case LevelVerbose:
		return "VRB"
	case LevelDebug:
		return "DBG"
	case LevelInformation:
		return "INF"
	case LevelWarning:
		return "WRN"
	case LevelError:
		return "ERR"
	case LevelCritical:
		return "CRT"
	default:
		return "UNK"
	}
}

// ParseLevel parses a level name (case-insensitive). Both full names and
// three-letter tags are accepted.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verbose", "vrb":
		return LevelVerbose, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "information", "info", "inf":
		return LevelInformation, nil
	case "warning", "warn", "wrn":
		return LevelWarning, nil
	case "error", "err":
		return LevelError, nil
	case "critical", "crt":
		return LevelCritical, nil
	default:
		return LevelVerbose, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}

// Enabled reports whether an event at level l passes the given minimum.
func (l Level) Enabled(min Level) bool {
	return l >= min
}

// MarshalJSON serializes the level as its full name so serialized events
// stay readable and round-trip through ParseLevel.
func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON parses a level from its serialized name.
func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// gate decides which sinks an event reaches. The file sink additionally
// requires an app name, since the app name selects the log directory.
func gate(level Level, cfg Config) (toConsole, toFile bool) {
	toConsole = level.Enabled(cfg.ConsoleMinLevel)
	toFile = cfg.AppName != "" && level.Enabled(cfg.FileMinLevel)
	return toConsole, toFile
}
