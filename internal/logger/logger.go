// Package logger provides leveled logging. Inside the TUI the writer is the
// log file opened by tea.LogToFile, so nothing reaches the terminal.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level represents a logging level.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// ParseLevel maps a config string to a Level. Unknown values map to info.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warn":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	}
	return InfoLevel, false
}

type Logger struct {
	level  Level
	logger *log.Logger
}

var (
	mu            sync.RWMutex
	defaultLogger *Logger
)

// Init installs the default logger. Until Init is called every call is a no-op.
func Init(level string, w io.Writer) {
	l, _ := ParseLevel(level)
	mu.Lock()
	defaultLogger = &Logger{
		level:  l,
		logger: log.New(w, "", log.LstdFlags|log.Lmicroseconds),
	}
	mu.Unlock()
}

func output(l Level, tag, format string, args ...interface{}) {
	mu.RLock()
	dl := defaultLogger
	mu.RUnlock()
	if dl == nil || dl.level > l {
		return
	}
	_ = dl.logger.Output(3, fmt.Sprintf("["+tag+"] "+format, args...))
}

func Debug(format string, args ...interface{}) { output(DebugLevel, "DEBUG", format, args...) }
func Info(format string, args ...interface{})  { output(InfoLevel, "INFO", format, args...) }
func Warn(format string, args ...interface{})  { output(WarnLevel, "WARN", format, args...) }
func Error(format string, args ...interface{}) { output(ErrorLevel, "ERROR", format, args...) }

func Fatal(format string, args ...interface{}) {
	output(ErrorLevel, "FATAL", format, args...)
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
