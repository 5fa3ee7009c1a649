package commands

import (
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	logLevel = "info"
	logFile  string
)

func setupLogging() error {
	lvl, err := log.ParseLevel(logLevel)
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	log.SetLevel(lvl)

	if logFile == "" {
		return nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrapf(err, "unable to open log file %s", logFile)
	}
	log.SetOutput(f)
	return nil
}

// quietLogs keeps log lines off the screen while termbox owns it, unless
// they are going to a file.
func quietLogs() {
	if logFile == "" {
		log.SetOutput(ioutil.Discard)
	}
}
