package logging

import (
	"fmt"
	"os"
)

// defaultService backs the package-level API. Embedding services that
// need an injectable latch (tests, multi-tenant hosts) construct their
// own Service instead.
var defaultService = NewService(Options{})

// Initialize installs the process-wide logging configuration for dest.
// See Service.Initialize.
func Initialize(dest Destination) error {
	return defaultService.Initialize(dest)
}

// InitializeSilent suppresses all process-wide logging output. See
// Service.InitializeSilent.
func InitializeSilent() error {
	return defaultService.InitializeSilent()
}

// MustInitialize is Initialize for services that treat logging as a
// prerequisite of every other subsystem: any failure aborts the process.
func MustInitialize(dest Destination) {
	if err := Initialize(dest); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "FATAL:", err)
		os.Exit(1)
	}
}

// Module returns a handle scoped to the given module name on the
// process-wide configuration.
func Module(name string) Logger {
	return defaultService.Module(name)
}

// Pass-through logging on the process-wide configuration.

func Trace(fields ...interface{}) { defaultService.Trace(fields...) }
func Debug(fields ...interface{}) { defaultService.Debug(fields...) }
func Info(fields ...interface{})  { defaultService.Info(fields...) }
func Warn(fields ...interface{})  { defaultService.Warn(fields...) }
func Error(fields ...interface{}) { defaultService.Error(fields...) }

func Tracef(format string, fields ...interface{}) { defaultService.Tracef(format, fields...) }
func Debugf(format string, fields ...interface{}) { defaultService.Debugf(format, fields...) }
func Infof(format string, fields ...interface{})  { defaultService.Infof(format, fields...) }
func Warnf(format string, fields ...interface{})  { defaultService.Warnf(format, fields...) }
func Errorf(format string, fields ...interface{}) { defaultService.Errorf(format, fields...) }
