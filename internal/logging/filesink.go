// SPDX-License-Identifier: MPL-2.0

package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"modkit-cli/pkg/platform"
)

// productName is the directory under the user data dir that all modkit
// log files live in.
const productName = "modkit"

// FileSink appends rendered lines to a daily, per-process log file under
// <user-data-dir>/modkit/<app>/<yyyy-MM-dd>_<pid>.log. There is no
// rotation beyond the daily boundary and no cross-process locking;
// within one process, appends go through the single logger call path.
type FileSink struct {
	// BaseDir overrides the platform data directory when non-empty.
	// Used by tests; production callers leave it unset.
	BaseDir string
}

// Append writes one line, creating the directory tree on first use.
// The app name selects the subdirectory; the day and pid select the file.
func (s *FileSink) Append(app, line string, pid int, ts time.Time) error {
	path, err := s.filePath(app, pid, ts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("failed to append log line: %w", err)
	}
	return nil
}

// filePath resolves the full log file path. Platform classification
// happens here, before any I/O, so unsupported platforms fail fast.
func (s *FileSink) filePath(app string, pid int, ts time.Time) (string, error) {
	base := s.BaseDir
	if base == "" {
		var err error
		base, err = platform.UserDataDir()
		if err != nil {
			return "", err
		}
	}
	name := fmt.Sprintf("%s_%d.log", ts.Format("2006-01-02"), pid)
	return filepath.Join(base, productName, app, name), nil
}
