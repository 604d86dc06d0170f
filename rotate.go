package logging

import (
	"os"
	"path/filepath"
	"time"
)

func rotatedPath(service string, now time.Time) string {
	return filepath.Join(logDir, service+now.Format(rotateStampFormat)+logExt)
}

// rotateLoop is the rotation waiter. It consumes triggers strictly in
// arrival order and runs for the remaining lifetime of the process;
// rotation simply stops when the process exits.
func (s *Service) rotateLoop() {
	for range s.triggers {
		s.rotateOnce(time.Now())
	}
}

// rotateOnce renames the live file aside with a local timestamp, rebuilds
// the configuration from the directives captured at startup and installs
// it; the sink recreates the live file on the next write. A failed rename
// abandons the attempt: a warning goes through the still-installed
// configuration and the process keeps logging on the old file handle.
func (s *Service) rotateOnce(now time.Time) {
	old := s.cfg.Load()

	live := livePath(s.dest.Service)
	rotated := rotatedPath(s.dest.Service, now)
	if err := os.Rename(live, rotated); err != nil {
		old.root.Warn().Err(err).Str("file", live).Msg("log rotation failed")
		return
	}

	cfg, err := buildFileConfig(s.dest.Service, s.directives, s.opts)
	if err != nil {
		old.root.Warn().Err(err).Str("file", live).Msg("log reconfiguration failed")
		return
	}

	s.cfg.Store(cfg)
	// The old writer still holds the renamed file open; release it now
	// that no new records can reach it.
	_ = old.Close()
}
