package obslog

import (
	"io"
	"log/slog"
)

// New creates a leveled text-format slog.Logger writing to out. It does
// not touch the global default logger, so callers can keep isolated
// instances per pipeline run. Timestamps come with the slog handler.
func New(out io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
}

// Tee fans log output out to both a console and a file writer, the
// classic stdout+logfile setup. The file handle stays owned by the
// caller: open it before building the logger and close it on all exit
// paths once logging is done. Neither obslog nor the engines ever hold
// the handle.
func Tee(console, file io.Writer) io.Writer {
	return io.MultiWriter(console, file)
}
