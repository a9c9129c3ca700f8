// Package logflags switches per-component logging on and off.
package logflags

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var garage = false
var scenario = false
var ui = false

var logOut io.WriteCloser

func makeLogger(flag bool, fields Fields) Logger {
	if lf := loggerFactory; lf != nil {
		return lf(flag, fields, logOut)
	}
	logger := logrus.New().WithFields(logrus.Fields(fields))
	logger.Logger.Level = logrus.DebugLevel
	if !flag {
		logger.Logger.Level = logrus.ErrorLevel
	}
	if logOut != nil {
		logger.Logger.Out = logOut
	}
	return &logrusLogger{logger}
}

// Garage returns true if the fleet package should log.
func Garage() bool {
	return garage
}

// GarageLogger returns a logger for garage and console operations.
func GarageLogger() Logger {
	return makeLogger(garage, Fields{"layer": "garage"})
}

// Scenario returns true if scenario steps should be logged.
func Scenario() bool {
	return scenario
}

// ScenarioLogger returns a logger for the scenario runner.
func ScenarioLogger() Logger {
	return makeLogger(scenario, Fields{"layer": "scenario"})
}

// UI returns true if the fleet window should log.
func UI() bool {
	return ui
}

// UILogger returns a logger for the fleet window.
func UILogger() Logger {
	return makeLogger(ui, Fields{"layer": "ui"})
}

var errLogstrWithoutLog = errors.New("--log-output specified without --log")
var errLogDestWithoutLog = errors.New("--log-dest specified without --log")

// Setup sets component flags based on the contents of logstr.
// If logDest is not empty logs are appended to that file instead of stderr.
// State left over from an earlier Setup is discarded first.
func Setup(logFlag bool, logstr, logDest string) error {
	Close()
	if !logFlag {
		if logstr != "" {
			return errLogstrWithoutLog
		}
		if logDest != "" {
			return errLogDestWithoutLog
		}
		return nil
	}
	if logDest != "" {
		f, err := os.OpenFile(logDest, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		logOut = f
	}
	if logstr == "" {
		logstr = "garage"
	}
	v := strings.Split(logstr, ",")
	for _, logcmd := range v {
		switch strings.TrimSpace(logcmd) {
		case "garage":
			garage = true
		case "scenario":
			scenario = true
		case "ui":
			ui = true
		}
	}
	return nil
}

// Close closes the log file opened by Setup, if any, and resets the flags.
func Close() {
	if logOut != nil {
		logOut.Close()
		logOut = nil
	}
	garage, scenario, ui = false, false, false
}
