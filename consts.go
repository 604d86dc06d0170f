package logging

const (
	// EnvFilterVar is the environment variable holding the module filter
	// spec. It is read exactly once, at initialization time.
	EnvFilterVar = "LOG_FILTER"

	// logDir is resolved relative to the process working directory. It
	// must already exist when a file destination is requested; this
	// package never creates it.
	logDir = "logs"
	logExt = ".log"

	// rotateStampFormat is appended to the service name when the live
	// file is renamed aside, using local time.
	rotateStampFormat = "_2006-01-02_15-04-05"

	// triggerBuffer bounds the rotation trigger queue. Signal delivery
	// into a full queue is dropped, never blocked on.
	triggerBuffer = 100

	emptyString = ""
)

const (
	errMsgNilService     = "Logger service is nil."
	errMsgDestInvalid    = "Destination is invalid."
	errMsgSinkUnwritable = "Log file path is not writable."
)
