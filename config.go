package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// rootLevel is the fallback verbosity for modules without a directive.
const rootLevel = zerolog.InfoLevel

// sinkConfig is the live logging configuration: one sink, the per-module
// level overrides and the root fallback. It is rebuilt wholesale on every
// (re)configuration and swapped in atomically, never patched in place.
type sinkConfig struct {
	root      zerolog.Logger
	overrides map[string]zerolog.Level
	file      *lumberjack.Logger
}

// levelFor resolves the effective level for a module. Names match
// exactly; see buildOverrides for the duplicate-directive rule.
func (c *sinkConfig) levelFor(module string) zerolog.Level {
	if lvl, ok := c.overrides[module]; ok {
		return lvl
	}
	return c.root.GetLevel()
}

// Close releases the file sink, if any.
func (c *sinkConfig) Close() error {
	if c.file == nil {
		return nil
	}
	return c.file.Close()
}

func livePath(service string) string {
	return filepath.Join(logDir, service+logExt)
}

// buildOverrides installs directives into the override map in order, so
// the last directive for a given module name wins.
func buildOverrides(directives []Directive) map[string]zerolog.Level {
	if len(directives) == 0 {
		return nil
	}

	overrides := make(map[string]zerolog.Level, len(directives))
	for _, d := range directives {
		overrides[d.Name] = d.Level
	}
	return overrides
}

// buildConsoleConfig builds a configuration writing human-readable lines
// to out, each prefixed with the service name when one is set.
func buildConsoleConfig(service string, directives []Directive, out io.Writer) *sinkConfig {
	console := zerolog.ConsoleWriter{Out: out, NoColor: true}
	if service != emptyString {
		prefix := "[" + service + "]: "
		console.FormatTimestamp = func(i interface{}) string {
			return prefix + fmt.Sprintf("%v", i)
		}
	}

	root := zerolog.New(console).Level(rootLevel).With().Timestamp().Logger()

	return &sinkConfig{root: root, overrides: buildOverrides(directives)}
}

// buildFileConfig builds a configuration writing to logs/<service>.log
// through a lumberjack writer. The logs directory must already exist.
func buildFileConfig(service string, directives []Directive, opts Options) (*sinkConfig, error) {
	const op errors.Op = "logging.buildFileConfig"

	path := livePath(service)

	// lumberjack defers opening to the first write; probe the path now so
	// an unwritable sink fails initialization instead of the first record.
	probe, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgSinkUnwritable)
	}
	if err = probe.Close(); err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgSinkUnwritable)
	}

	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
	}

	root := zerolog.New(file).Level(rootLevel).With().Timestamp().Str("service", service).Logger()

	return &sinkConfig{root: root, overrides: buildOverrides(directives), file: file}, nil
}

// buildSilentConfig builds a configuration with all output suppressed.
func buildSilentConfig() *sinkConfig {
	return &sinkConfig{root: zerolog.Nop()}
}
