// Package logging provides process-wide logging initialization over
// rs/zerolog: a filter-spec parser, console and rotating file sinks, and
// signal-driven log rotation.
//
// Key features
//   - One-shot initialization: Initialize/InitializeSilent run the full
//     build-and-install sequence exactly once per Service, no matter how
//     many call sites (or goroutines) request it
//   - Module filter spec read from the LOG_FILTER environment variable
//     (e.g. "store,store/wal=debug,net=trace"); malformed entries are
//     skipped with an advisory warning, never a failure
//   - File destinations write to logs/<service>.log via lumberjack and
//     rotate on SIGUSR1: the live file is renamed aside with a local
//     timestamp and a fresh configuration is swapped in atomically
//   - Module-scoped handles via Module() whose effective level tracks
//     the live configuration across rotations
//
// Typical usage
//
//	if err := logging.Initialize(logging.File("gateway")); err != nil {
//		panic(err)
//	}
//	logging.Infof("gateway starting on %s", addr)
//
//	store := logging.Module("store")
//	store.DebugWith().Str("segment", seg).Msg("compaction scheduled")
//
// The logs/ directory must already exist; it is resolved relative to the
// process working directory. Rotation requires a Unix platform.
package logging
