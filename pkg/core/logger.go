package core

// Logger interface for render progress and timing output
type Logger interface {
	Printf(format string, args ...interface{})
}
