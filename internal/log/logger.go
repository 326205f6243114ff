// Package log provides a global logger with configurable logging level.
//
// Call [Init] once at process start. Packages that emit log messages accept a [Logger] so callers
// (and tests) can substitute their own sink; [Default] returns a Logger backed by the global
// configuration.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Level int

const (
	LevelNone    Level = iota // Disables logging.
	LevelError                // Logs anamolies that are not expected to occur during normal use.
	LevelWarning              // Logs anamolies that are expected to occur occasionally during normal use.
	LevelInfo                 // Logs major events.
	LevelDebug                // Logs controller IO
)

// Config holds process-wide logging settings.
type Config struct {
	Level Level

	// File, if set, receives a copy of every message. The file is rotated once it reaches
	// MaxSizeMB megabytes, and at most MaxBackups rotated files are kept.
	File       string
	MaxSizeMB  int
	MaxBackups int
}

const (
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
)

// Logger is the logging capability handed to components.
type Logger interface {
	Debug(format string, a ...interface{})
	Info(format string, a ...interface{})
	Warning(format string, a ...interface{})
	Error(format string, a ...interface{})
}

var (
	globalLogLevel Level     = LevelInfo
	output         io.Writer = os.Stderr
	rotator        *lumberjack.Logger
	logMutex       sync.Mutex
)

var labels = map[Level]string{
	LevelDebug:   "[debug]",
	LevelInfo:    "[info ]",
	LevelWarning: "[warn ]",
	LevelError:   "[error]",
}

// Init applies c to the global logger. Calling Init again replaces the previous configuration and
// closes any log file it opened.
func Init(c Config) error {
	logMutex.Lock()
	defer logMutex.Unlock()

	if err := closeRotator(); err != nil {
		return err
	}
	globalLogLevel = c.Level
	output = os.Stderr
	if c.File == "" {
		return nil
	}

	rotator = &lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
	}
	if rotator.MaxSize <= 0 {
		rotator.MaxSize = defaultMaxSizeMB
	}
	if rotator.MaxBackups <= 0 {
		rotator.MaxBackups = defaultMaxBackups
	}
	output = io.MultiWriter(os.Stderr, rotator)
	return nil
}

// Close flushes and closes the log file opened by [Init], if any.
func Close() error {
	logMutex.Lock()
	defer logMutex.Unlock()
	return closeRotator()
}

func closeRotator() error {
	if rotator == nil {
		return nil
	}
	err := rotator.Close()
	rotator = nil
	return err
}

func SetLevel(level Level) {
	logMutex.Lock()
	defer logMutex.Unlock()
	globalLogLevel = level
}

// SetOutput redirects log messages to w. It is mostly useful in tests.
func SetOutput(w io.Writer) {
	logMutex.Lock()
	defer logMutex.Unlock()
	output = w
}

func log(level Level, format string, a ...interface{}) {
	logMutex.Lock()
	defer logMutex.Unlock()
	if level <= globalLogLevel {
		msg := fmt.Sprintf("%s %s ", time.Now().Format(time.RFC3339), labels[level])
		msg += fmt.Sprintf(format, a...)
		fmt.Fprintln(output, msg)
	}
}

func Debug(format string, a ...interface{}) {
	log(LevelDebug, format, a...)
}
func Info(format string, a ...interface{}) {
	log(LevelInfo, format, a...)
}
func Warning(format string, a ...interface{}) {
	log(LevelWarning, format, a...)
}
func Error(format string, a ...interface{}) {
	log(LevelError, format, a...)
}

type global struct{}

func (global) Debug(format string, a ...interface{})   { Debug(format, a...) }
func (global) Info(format string, a ...interface{})    { Info(format, a...) }
func (global) Warning(format string, a ...interface{}) { Warning(format, a...) }
func (global) Error(format string, a ...interface{})   { Error(format, a...) }

// Default returns a Logger that writes through the global configuration.
func Default() Logger {
	return global{}
}

type discard struct{}

func (discard) Debug(string, ...interface{})   {}
func (discard) Info(string, ...interface{})    {}
func (discard) Warning(string, ...interface{}) {}
func (discard) Error(string, ...interface{})   {}

// Discard is a Logger that drops every message.
var Discard Logger = discard{}
