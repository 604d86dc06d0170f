package logging

// Logger is a module-scoped logging handle handed out by Module(). Each
// level method resolves the module's effective verbosity against the live
// configuration, so handles stay valid across rotations.
type Logger interface {
	TraceWith() LogEvent
	DebugWith() LogEvent
	InfoWith() LogEvent
	WarnWith() LogEvent
	ErrorWith() LogEvent

	// Name returns the module name the handle is scoped to.
	Name() string
}
