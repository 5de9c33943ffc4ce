// SPDX-License-Identifier: MPL-2.0

package logging

import (
	"io"
	"os"
	"time"
)

// Config is the per-call sink configuration. Construct it once per call
// site (DefaultConfig gives the documented defaults) instead of
// re-declaring ad-hoc settings blocks.
type Config struct {
	// ConsoleMinLevel is the minimum level that reaches the terminal.
	ConsoleMinLevel Level
	// FileMinLevel is the minimum level that reaches the log file.
	FileMinLevel Level
	// AppName selects the log file subdirectory. An empty name disables
	// the file sink entirely.
	AppName string
	// UseBackgroundColor renders literal template text with a background.
	UseBackgroundColor bool
	// Overwrite redraws the previous console line in place instead of
	// appending.
	Overwrite bool
	// InitialWrite marks the first write of an overwrite sequence: a
	// blank separator line is emitted and nothing is erased.
	InitialWrite bool
	// ReturnJSON additionally returns the serialized event.
	ReturnJSON bool
}

// DefaultConfig returns the default per-call configuration: console at
// Information and file at Verbose, file sink disabled until an app name
// is set, plain append rendering.
func DefaultConfig() Config {
	return Config{
		ConsoleMinLevel: LevelInformation,
		FileMinLevel:    LevelVerbose,
	}
}

// Logger owns the process-scoped pieces of the engine: the console with
// its redraw state and cached caller identity, the file sink, and the
// process id stamped on every event.
type Logger struct {
	console *Console
	sink    *FileSink
	pid     int
	now     func() time.Time
}

// New creates a logger writing to stdout and the platform log directory.
func New() *Logger {
	return NewWithSinks(os.Stdout, &FileSink{})
}

// NewWithSinks creates a logger with explicit sinks. Tests use this to
// capture console output and redirect the log directory.
func NewWithSinks(out io.Writer, sink *FileSink) *Logger {
	return &Logger{
		console: NewConsole(out),
		sink:    sink,
		pid:     os.Getpid(),
		now:     time.Now,
	}
}

// Log renders one event with positional parameter binding: values bind
// to the template's distinct placeholders in first-occurrence order.
// It returns the built event and, when cfg.ReturnJSON is set, its
// serialized form. When the level passes neither threshold the call is a
// no-op and returns a nil event.
func (l *Logger) Log(cfg Config, level Level, template string, values ...any) (*Event, string, error) {
	return l.log(cfg, level, template, func(segs []segment, names []string) (string, []Param, error) {
		return bindPositional(segs, names, values)
	})
}

// LogNamed renders one event with named parameter binding. Placeholders
// missing from the map render as the empty string.
func (l *Logger) LogNamed(cfg Config, level Level, template string, values map[string]any) (*Event, string, error) {
	return l.log(cfg, level, template, func(segs []segment, names []string) (string, []Param, error) {
		msg, params := bindNamed(segs, names, values)
		return msg, params, nil
	})
}

type bindFunc func(segs []segment, names []string) (string, []Param, error)

func (l *Logger) log(cfg Config, level Level, template string, bind bindFunc) (*Event, string, error) {
	toConsole, toFile := gate(level, cfg)
	if !toConsole && !toFile {
		// No sink wants the event; skip template work entirely.
		return nil, "", nil
	}

	segs, names := parseTemplate(template)
	message, params, err := bind(segs, names)
	if err != nil {
		return nil, "", err
	}

	ev := &Event{
		Timestamp: l.now(),
		PID:       l.pid,
		Level:     level,
		Template:  template,
		Message:   message,
		Params:    params,
	}

	if toConsole {
		if err := l.console.Write(ev, segs, cfg); err != nil {
			return nil, "", err
		}
	}
	if toFile {
		line := renderPlain(ev, l.console.Caller())
		if err := l.sink.Append(cfg.AppName, line, ev.PID, ev.Timestamp); err != nil {
			return nil, "", err
		}
	}

	if !cfg.ReturnJSON {
		return ev, "", nil
	}
	serialized, err := ev.JSON()
	if err != nil {
		return nil, "", err
	}
	return ev, serialized, nil
}
