package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Directive is a single (module name, verbosity level) override pulled
// from the filter spec.
type Directive struct {
	Name  string
	Level zerolog.Level
}

// levelFromName resolves one of the six filter level names, case
// insensitively: off, error, warn, info, debug, trace. "off" maps to
// zerolog.Disabled.
func levelFromName(name string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "off":
		return zerolog.Disabled, true
	case "error":
		return zerolog.ErrorLevel, true
	case "warn":
		return zerolog.WarnLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "trace":
		return zerolog.TraceLevel, true
	}
	return zerolog.NoLevel, false
}

// parseDirectives parses a comma separated filter spec such as
// "store,store/wal=debug,net=trace" into an ordered directive list.
// A module without a level defaults to Info. Malformed entries are
// skipped with an advisory warning on diag; parsing never fails.
func parseDirectives(spec string, diag io.Writer) []Directive {
	var directives []Directive

	for _, entry := range strings.Split(spec, ",") {
		if entry == emptyString {
			continue
		}

		var name string
		level := zerolog.InfoLevel

		parts := strings.SplitN(entry, "=", 3)
		switch len(parts) {
		case 1:
			// A bare level does not identify which module it applies to.
			if _, ok := levelFromName(parts[0]); ok {
				fmt.Fprintf(diag, "warning: log level %q needs an explicit module name\n", parts[0])
				continue
			}
			name = parts[0]
		case 2:
			name = parts[0]
			if lvlName := strings.TrimSpace(parts[1]); lvlName != emptyString {
				lvl, ok := levelFromName(lvlName)
				if !ok {
					fmt.Fprintf(diag, "warning: invalid logging spec %q, ignoring it\n", parts[1])
					continue
				}
				level = lvl
			}
		default:
			fmt.Fprintf(diag, "warning: invalid logging spec %q, ignoring it\n", entry)
			continue
		}

		name = strings.TrimSpace(name)
		if name == emptyString {
			continue
		}

		directives = append(directives, Directive{Name: name, Level: level})
	}

	return directives
}
