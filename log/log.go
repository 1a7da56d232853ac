package log

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// FormatError renders err followed by the stack trace of the
// outermost error that recorded one.
func FormatError(err error) string {
	var stErr stackTracer
	if errors.As(err, &stErr) {
		b := &bytes.Buffer{}
		fmt.Fprintf(b, "%s\n", err)

		for _, f := range stErr.StackTrace() {
			fmt.Fprintf(b, "  %+v\n", f)
		}

		return b.String()
	}

	return fmt.Sprint(err)
}

// Init configures the standard logrus logger.
func Init(level string, w io.Writer) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	logrus.SetLevel(lvl)
	logrus.SetOutput(w)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return nil
}

// Silence discards log output until the returned func is called.
func Silence() func() {
	l := logrus.StandardLogger()
	orig := l.Out
	l.SetOutput(io.Discard)
	return func() {
		l.SetOutput(orig)
	}
}
