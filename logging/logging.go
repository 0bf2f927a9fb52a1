/*
Package logging hands out named stderr loggers so that warnings from the
field, diffusion and driver layers can be told apart on the terminal.
*/
package logging

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// Loggers is the runtime map of logger name to logger object
var Loggers map[string]*logrus.Logger

func init() {
	Loggers = make(map[string]*logrus.Logger)
}

// TextFormatter extends the standard logrus TextFormatter and prefixes each
// entry with the name of the logger that produced it
type TextFormatter struct {
	LoggerName string
	logrus.TextFormatter
}

// Format formats a log entry onto bytes
func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	bytes, err := f.TextFormatter.Format(entry)
	name := color.New(color.Bold).Sprintf("[%s]", f.LoggerName)
	return []byte(fmt.Sprintf("%s\t %s", name, bytes)), err
}

// NewLogger is the constructor for a new Logger object with the given name.
// Output goes to stderr so that share and secret output on stdout stays
// machine-readable.
func NewLogger(name string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	log.Formatter = &TextFormatter{
		LoggerName: name,
	}
	Loggers[name] = log
	return log
}

// SetLevel sets the given level for all current Loggers
func SetLevel(level logrus.Level) {
	for k := range Loggers {
		Loggers[k].SetLevel(level)
	}
}

// Configure maps the command line's noise flags onto a log level for every
// registered logger: quietAll drops warnings, quiet keeps warnings but mutes
// informational output, the default keeps both.
func Configure(quiet, quietAll bool) {
	switch {
	case quietAll:
		SetLevel(logrus.ErrorLevel)
	case quiet:
		SetLevel(logrus.WarnLevel)
	default:
		SetLevel(logrus.InfoLevel)
	}
}
