package util

import (
	"log/slog"
	"os"

	"github.com/baditaflorin/l"
)

// Logger creates the structured logger shared by the command line tools.
// Messages go to stderr so that they do not mix with any output written to
// stdout. With -verbose, debug messages and their source are included. The
// caller must Close it.
func Logger() l.Logger {
	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:      os.Stderr,
		JsonFormat:  false,
		AsyncWrite:  true,
		BufferSize:  64 * 1024,
		MaxFileSize: 10 * 1024 * 1024,
		MaxBackups:  5,
		AddSource:   FlagVerbose,
		Metrics:     false,
		MinLevel:    logLevel(FlagVerbose),
	})
	Assert(err, "Could not create logger")
	return logger
}

func logLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
