package log

// nullLogger discards every record. It is the default sink for a CPU
// constructed without an explicit WithLogger option.
type nullLogger struct{}

func (n nullLogger) Infof(format string, args ...interface{})  {}
func (n nullLogger) Errorf(format string, args ...interface{}) {}
func (n nullLogger) Debugf(format string, args ...interface{}) {}

// NewNullLogger returns a Logger that discards every record.
func NewNullLogger() Logger {
	return nullLogger{}
}
