package logger

import (
	"os"
	"sync"

	"github.com/op/go-logging"
)

const defaultFormatStr = "%{color}%{time:2006-01-02 15:04:05.000 MST} [%{module}] %{shortfunc} -> %{level:.4s} %{id:03x}%{color:reset} %{message}"

var (
	lg   *logging.Logger
	once sync.Once
)

// Logger returns the logger for the dispatch core. The backend writes to
// stderr and is configured once, from the ENTRYPOINT_LOGGING_FORMAT and
// ENTRYPOINT_LOGGING_LEVEL environment variables; the level defaults to
// warning.
func Logger() *logging.Logger {
	once.Do(func() {
		lg = logging.MustGetLogger("entrypoint")

		formatStr := os.Getenv("ENTRYPOINT_LOGGING_FORMAT")
		format, err := logging.NewStringFormatter(formatStr)
		if err != nil {
			format = defaultLoggingFormat()
		}

		stderr := logging.NewLogBackend(os.Stderr, "", 0)
		formatted := logging.NewBackendFormatter(stderr, format)

		levelStr := os.Getenv("ENTRYPOINT_LOGGING_LEVEL")
		if levelStr == "" {
			levelStr = "warning"
		}

		level, err := logging.LogLevel(levelStr)
		if err != nil {
			panic(err)
		}

		leveled := logging.AddModuleLevel(formatted)
		leveled.SetLevel(level, "")
		lg.SetBackend(leveled)
	})

	return lg
}

func defaultLoggingFormat() logging.Formatter {
	format, err := logging.NewStringFormatter(defaultFormatStr)
	if err != nil {
		format = logging.DefaultFormatter
	}

	return format
}
