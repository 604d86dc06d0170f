package logging

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Options tunes the file sink and diagnostics. The zero value matches the
// defaults of the underlying rotating writer: 100 MB size cap, no backup
// or age pruning.
type Options struct {
	// Size-cap backstop for the live file, independent of signal-driven
	// rotation. Passed through to lumberjack.
	MaxSizeMB  int `validate:"gte=0"`
	MaxBackups int `validate:"gte=0"`
	MaxAgeDays int `validate:"gte=0"`

	// Diag receives filter-spec parse warnings. Defaults to os.Stderr.
	Diag io.Writer

	// ConsoleOut overrides the console sink output. Defaults to os.Stdout.
	ConsoleOut io.Writer
}

// Service owns one process-wide logging configuration. The zero value is
// ready to use; all methods are safe before initialization and on a nil
// receiver, logging nothing.
type Service struct {
	opts Options

	initOnce      sync.Once
	initErr       error
	isInitialized atomic.Bool
	cfg           atomic.Pointer[sinkConfig]

	// Captured by the winning Initialize call; rotation rebuilds from
	// these and cannot see later directive changes.
	dest       Destination
	directives []Directive
	triggers   chan os.Signal
}

// NewService returns an uninitialized Service with the given options.
func NewService(opts Options) *Service {
	return &Service{opts: opts}
}

// sprintPool is a buffer pool for the fmt.Sprint pass-through helpers to
// reduce allocations.
var sprintPool = sync.Pool{
	New: func() interface{} {
		return new(strings.Builder)
	},
}

// Initialize parses the filter spec from EnvFilterVar, builds the sink
// configuration for dest and installs it. It runs at most once per
// Service: concurrent callers block until the winning call completes, and
// every call returns the winner's result. A file destination registers
// the SIGUSR1 rotation trigger and starts the rotation waiter.
func (s *Service) Initialize(dest Destination) error {
	const op errors.Op = "logging.Service.Initialize"
	if s == nil {
		return errors.New(op).Msg(errMsgNilService)
	}

	s.initOnce.Do(func() {
		s.initErr = s.initialize(dest)
	})
	return s.initErr
}

// InitializeSilent installs a configuration with all output suppressed.
// It shares the one-shot slot with Initialize: whichever runs first wins.
func (s *Service) InitializeSilent() error {
	const op errors.Op = "logging.Service.InitializeSilent"
	if s == nil {
		return errors.New(op).Msg(errMsgNilService)
	}

	s.initOnce.Do(func() {
		s.cfg.Store(buildSilentConfig())
		s.isInitialized.Store(true)
	})
	return s.initErr
}

func (s *Service) initialize(dest Destination) error {
	if err := validateDestination(dest); err != nil {
		return err
	}

	diag := s.opts.Diag
	if diag == nil {
		diag = os.Stderr
	}
	directives := parseDirectives(os.Getenv(EnvFilterVar), diag)

	var cfg *sinkConfig
	switch dest.Kind {
	case KindFile:
		var err error
		if cfg, err = buildFileConfig(dest.Service, directives, s.opts); err != nil {
			return err
		}
	default:
		out := s.opts.ConsoleOut
		if out == nil {
			out = os.Stdout
		}
		cfg = buildConsoleConfig(dest.Service, directives, out)
	}

	s.dest = dest
	s.directives = directives
	s.cfg.Store(cfg)
	s.isInitialized.Store(true)

	if dest.Kind == KindFile {
		// Register the trigger before starting the waiter so a signal
		// arriving in between is queued, not lost.
		s.triggers = make(chan os.Signal, triggerBuffer)
		signal.Notify(s.triggers, syscall.SIGUSR1)
		go s.rotateLoop()
	}

	return nil
}

// Initialized reports whether a configuration has been installed.
func (s *Service) Initialized() bool {
	return s != nil && s.isInitialized.Load()
}

// Close releases the file sink handle. The initialization latch does not
// reset and the rotation waiter is not joined; it stops with the process.
// It's safe to call Close multiple times.
func (s *Service) Close() error {
	if s == nil || !s.isInitialized.Load() {
		return nil
	}
	cfg := s.cfg.Load()
	if cfg == nil {
		return nil
	}
	return cfg.Close()
}

// Module returns a logging handle scoped to the given module name. Its
// effective level follows the live configuration across rotations.
func (s *Service) Module(name string) Logger {
	return &moduleLogger{svc: s, name: name}
}

// rootLogger returns the live root logger, or nil before initialization.
func (s *Service) rootLogger() *zerolog.Logger {
	if s == nil || !s.isInitialized.Load() {
		return nil
	}
	cfg := s.cfg.Load()
	if cfg == nil {
		return nil
	}
	return &cfg.root
}

func (s *Service) log(level zerolog.Level, fields ...interface{}) {
	logger := s.rootLogger()
	if logger == nil {
		return
	}

	buf := sprintPool.Get().(*strings.Builder)
	buf.Reset()
	defer sprintPool.Put(buf)

	fmt.Fprint(buf, fields...)
	logger.WithLevel(level).Msg(buf.String())
}

func (s *Service) logf(level zerolog.Level, format string, fields ...interface{}) {
	logger := s.rootLogger()
	if logger == nil {
		return
	}
	logger.WithLevel(level).Msgf(format, fields...)
}

// Pass-through logging at the root level.

func (s *Service) Trace(fields ...interface{}) { s.log(zerolog.TraceLevel, fields...) }
func (s *Service) Debug(fields ...interface{}) { s.log(zerolog.DebugLevel, fields...) }
func (s *Service) Info(fields ...interface{})  { s.log(zerolog.InfoLevel, fields...) }
func (s *Service) Warn(fields ...interface{})  { s.log(zerolog.WarnLevel, fields...) }
func (s *Service) Error(fields ...interface{}) { s.log(zerolog.ErrorLevel, fields...) }

func (s *Service) Tracef(format string, fields ...interface{}) {
	s.logf(zerolog.TraceLevel, format, fields...)
}

func (s *Service) Debugf(format string, fields ...interface{}) {
	s.logf(zerolog.DebugLevel, format, fields...)
}

func (s *Service) Infof(format string, fields ...interface{}) {
	s.logf(zerolog.InfoLevel, format, fields...)
}

func (s *Service) Warnf(format string, fields ...interface{}) {
	s.logf(zerolog.WarnLevel, format, fields...)
}

func (s *Service) Errorf(format string, fields ...interface{}) {
	s.logf(zerolog.ErrorLevel, format, fields...)
}
