package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var lg *logrus.Logger

// Logger returns the process-wide library logger. The level is taken from
// the VMBIND_LOG_LEVEL environment variable (default "warning") and the
// format from VMBIND_LOG_FORMAT ("json" for JSON output, anything else for
// text with timestamps).
func Logger() *logrus.Logger {
	if lg == nil {
		lg = logrus.New()
		lg.SetOutput(os.Stderr)

		levelStr := os.Getenv("VMBIND_LOG_LEVEL")
		if levelStr == "" {
			levelStr = "warning"
		}
		level, err := logrus.ParseLevel(levelStr)
		if err != nil {
			level = logrus.WarnLevel
		}
		lg.SetLevel(level)

		if os.Getenv("VMBIND_LOG_FORMAT") == "json" {
			lg.SetFormatter(&logrus.JSONFormatter{})
		} else {
			lg.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		}
	}

	return lg
}
