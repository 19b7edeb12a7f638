package matfile

import "log/slog"

// logger wraps slog.Logger with the field names used for MAT-file writes.
type logger struct {
	*slog.Logger
}

// newLogger wraps l, or discards everything when l is nil.
func newLogger(l *slog.Logger) *logger {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}

	return &logger{Logger: l}
}

// logWrite logs the outcome of writing a file to path.
func (l *logger) logWrite(path string, cfg *writeConfig, result WriteResult, err error) {
	switch {
	case err == nil:
		l.Debug("mat-file written",
			"path", path,
			"compressed", cfg.compressed,
			"transport", cfg.transport.String(),
			"bytes", result.Bytes,
			"checksum", result.Checksum,
		)
	case result.Bytes > 0:
		l.Warn("mat-file write failed after partial output",
			"path", path,
			"bytes", result.Bytes,
			"error", err,
		)
	default:
		l.Error("mat-file write failed",
			"path", path,
			"error", err,
		)
	}
}
