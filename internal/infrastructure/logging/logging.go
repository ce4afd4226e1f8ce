package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Setup configures the global logrus logger: JSON output outside development and
// the level from LOG_LEVEL (info when unparseable).
func Setup(environment, level string) {
	logrus.SetOutput(os.Stdout)

	if environment == "development" {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("[logging] invalid LOG_LEVEL=%q, falling back to info", level)
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}
