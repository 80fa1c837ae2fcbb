package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New builds a logger writing to stdout with the given level and format
func New(level, format string) (*logrus.Logger, error) {
	return NewWithWriter(os.Stdout, level, format)
}

// NewWithWriter is New with an explicit destination
func NewWithWriter(w io.Writer, level, format string) (*logrus.Logger, error) {
	parsedLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	formatter, err := Formatter(format)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(parsedLevel)
	log.SetFormatter(formatter)
	return log, nil
}

// Formatter returns the logrus formatter for a format name
func Formatter(format string) (logrus.Formatter, error) {
	switch format {
	case "text":
		return &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}, nil
	case "json":
		return &logrus.JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown log format: %v", format)
	}
}

// Discard returns a logger that drops everything, for tests
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
