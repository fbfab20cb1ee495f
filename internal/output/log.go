// Package output provides terminal output utilities.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var (
	// logger is the global logger instance.
	logger *log.Logger

	// stdout and stderr back Print/Println and the logger.
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func init() {
	logger = log.NewWithOptions(stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// LogConfig controls logger construction.
type LogConfig struct {
	// Verbose enables debug level, timestamps and caller info.
	Verbose bool

	// Timestamps overrides timestamp display. Nil means off unless Verbose.
	Timestamps *bool
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

func (c LogConfig) timestamps() bool {
	if c.Verbose {
		return true
	}
	if c.Timestamps != nil {
		return *c.Timestamps
	}
	return false
}

// SetupLogging configures the logger based on cfg.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	logger = log.NewWithOptions(stderr, log.Options{
		Level:           level,
		ReportTimestamp: cfg.timestamps(),
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// SetOutput redirects stdout/stderr used by this package. Intended for tests
// and for embedding the CLI; call SetupLogging afterwards to rebind the logger.
func SetOutput(out, errOut io.Writer) {
	stdout = out
	stderr = errOut
	logger.SetOutput(errOut)
}

// Stdout returns the writer reports are written to.
func Stdout() io.Writer {
	return stdout
}

// Stderr returns the writer diagnostics are written to.
func Stderr() io.Writer {
	return stderr
}

// StepLogger returns a child logger prefixed with the pipeline step name.
func StepLogger(step string) *log.Logger {
	return logger.WithPrefix(step)
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Details writes multi-line text to stderr without log formatting.
func Details(text string) {
	io.WriteString(stderr, text)
}

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	io.WriteString(stdout, msg)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	io.WriteString(stdout, msg+"\n")
}
