package catalog

var (
	log logger = &nullLogger{}
)

type logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// SetLog replaces the logger of the package. Nothing is logged by default.
func SetLog(l logger) {
	log = l
}

type nullLogger struct{}

func (n *nullLogger) Debugf(format string, args ...interface{}) {}
func (n *nullLogger) Warnf(format string, args ...interface{})  {}
