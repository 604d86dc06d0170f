package logging

// Kind selects the sink type for a Destination.
type Kind string

const (
	// KindConsole routes all records to standard output.
	KindConsole Kind = "console"
	// KindFile routes all records to logs/<service>.log and enables
	// signal-driven rotation.
	KindFile Kind = "file"
)

// Destination names the sink the process logs to. Service is embedded as
// a prefix in console lines and is the base name of the live log file for
// file destinations, where it must be non-empty.
type Destination struct {
	Kind    Kind   `validate:"required,oneof=console file"`
	Service string `validate:"required_if=Kind file"`
}

// Console returns a destination writing to standard output.
func Console(service string) Destination {
	return Destination{Kind: KindConsole, Service: service}
}

// File returns a destination writing to logs/<service>.log with SIGUSR1
// rotation.
func File(service string) Destination {
	return Destination{Kind: KindFile, Service: service}
}
