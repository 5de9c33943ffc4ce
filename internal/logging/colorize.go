// SPDX-License-Identifier: MPL-2.0

package logging

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"modkit-cli/pkg/version"
)

// Kind classifies a bound parameter value for display coloring. The set
// is closed: classification is a type switch over concrete types, never
// reflection over type names, and unknown types fall back to KindDefault.
type Kind int

const (
	// KindDefault is the fallback for unclassified values.
	KindDefault Kind = iota
	// KindText is a plain string.
	KindText
	// KindWholeNumber is any integer type.
	KindWholeNumber
	// KindRealNumber is any floating-point type.
	KindRealNumber
	// KindBool is a boolean.
	KindBool
	// KindTimestamp is a time.Time.
	KindTimestamp
	// KindVersion is a version.Version.
	KindVersion
)

// Color palette shared by the console renderer and the value colorizer.
// Designed for dark terminal backgrounds with good contrast.
const (
	colorDim       = lipgloss.Color("#6B7280")
	colorInfo      = lipgloss.Color("#3B82F6")
	colorSuccess   = lipgloss.Color("#10B981")
	colorWarn      = lipgloss.Color("#F59E0B")
	colorFail      = lipgloss.Color("#EF4444")
	colorText      = lipgloss.Color("#E5E7EB")
	colorNumber    = lipgloss.Color("#22D3EE")
	colorBool      = lipgloss.Color("#A78BFA")
	colorTimestamp = lipgloss.Color("#FBBF24")
	colorVersion   = lipgloss.Color("#34D399")
	colorBack      = lipgloss.Color("#1F2937")
)

// kindStyles is the static kind→style table.
var kindStyles = map[Kind]lipgloss.Style{
	KindDefault:     lipgloss.NewStyle().Foreground(colorDim),
	KindText:        lipgloss.NewStyle().Foreground(colorText),
	KindWholeNumber: lipgloss.NewStyle().Foreground(colorNumber),
	KindRealNumber:  lipgloss.NewStyle().Foreground(colorNumber).Italic(true),
	KindBool:        lipgloss.NewStyle().Foreground(colorBool),
	KindTimestamp:   lipgloss.NewStyle().Foreground(colorTimestamp),
	KindVersion:     lipgloss.NewStyle().Foreground(colorVersion),
}

// levelStyles is the static severity→style table for the level tag.
var levelStyles = map[Level]lipgloss.Style{
	LevelVerbose:     lipgloss.NewStyle().Foreground(colorDim),
	LevelDebug:       lipgloss.NewStyle().Foreground(colorInfo),
	LevelInformation: lipgloss.NewStyle().Foreground(colorSuccess),
	LevelWarning:     lipgloss.NewStyle().Foreground(colorWarn),
	LevelError:       lipgloss.NewStyle().Foreground(colorFail),
	LevelCritical:    lipgloss.NewStyle().Foreground(colorFail).Background(colorBack).Bold(true),
}

// literalStyle renders the template's literal text spans.
var literalStyle = lipgloss.NewStyle().Foreground(colorDim)

// KindOf classifies a value into its display kind.
func KindOf(v any) Kind {
	switch v.(type) {
	case string:
		return KindText
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindWholeNumber
	case float32, float64:
		return KindRealNumber
	case bool:
		return KindBool
	case time.Time:
		return KindTimestamp
	case version.Version:
		return KindVersion
	default:
		return KindDefault
	}
}

// styleFor returns the display style for a value's kind.
func styleFor(v any) lipgloss.Style {
	return kindStyles[KindOf(v)]
}
