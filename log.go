package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var LogType = struct {
	Startup string
	Inbox   string
	Prepare string
	Metrics string
	Queue   string
}{
	Startup: "startup",
	Inbox:   "inbox",
	Prepare: "prepare",
	Metrics: "metrics",
	Queue:   "queue",
}

// LoggingFormat collects the fields of a single structured log line.
type LoggingFormat struct {
	Type           string
	Function       string
	Level          logrus.Level
	Message        string
	Error          error
	TransactionID  string
	AdditionalData map[string]interface{}
}

// AddField attaches an extra key/value pair to the log line.
func (l *LoggingFormat) AddField(key string, value interface{}) {
	if l.AdditionalData == nil {
		l.AdditionalData = make(map[string]interface{})
	}
	l.AdditionalData[key] = value
}

func (l *LoggingFormat) fields() logrus.Fields {
	fields := logrus.Fields{}
	if l.Type != "" {
		fields["type"] = l.Type
	}
	if l.Function != "" {
		fields["function"] = l.Function
	}
	if l.TransactionID != "" {
		fields["transaction_id"] = l.TransactionID
	}
	for k, v := range l.AdditionalData {
		fields[k] = v
	}
	if l.Error != nil {
		fields[logrus.ErrorKey] = l.Error
	}
	return fields
}

// Print writes the log line at its level.
func (l *LoggingFormat) Print() {
	logrus.WithFields(l.fields()).Log(l.Level, l.Message)
}

// ToError logs the line and returns it as an error wrapping l.Error.
func (l *LoggingFormat) ToError() error {
	l.Print()
	if l.Error == nil {
		return errors.New(l.Message)
	}
	return fmt.Errorf("%s: %w", l.Message, l.Error)
}

// setupLogging configures the standard logrus logger. Output goes to
// stderr so stdout carries only JSON.
func setupLogging(cfg Config) {
	logrus.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if strings.EqualFold(cfg.LogFormat, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
