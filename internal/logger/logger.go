package logger

import (
	"io"
	"os"
	"sync"
)

// Log levels accepted by New and Get.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	globalLogger *Logger
	once         sync.Once
)

// Get returns the process-wide logger writing to stdout.
// The first call fixes the level; later calls return the same instance.
func Get(level string) *Logger {
	once.Do(func() {
		globalLogger = New(level, os.Stdout)
	})
	return globalLogger
}

// New builds a logger writing to w. The interactive learner logs to
// stderr so menus on stdout stay readable.
func New(level string, w io.Writer) *Logger {
	return newZapLogger(level, w)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return New(ErrorLevel, io.Discard)
}
