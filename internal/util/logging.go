// Package util provides logging helpers and file system locations.
package util

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// ownerFormatter prefixes every message with the owning component.
type ownerFormatter struct {
	owner string
	lf    logrus.Formatter
}

func (f *ownerFormatter) Format(e *logrus.Entry) ([]byte, error) {
	e.Message = fmt.Sprintf("[%s] %s", f.owner, e.Message)
	return f.lf.Format(e)
}

// NewLogger builds a text logger writing to w.
func NewLogger(owner string, w io.Writer, level logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	logger.SetFormatter(&ownerFormatter{
		owner: owner,
		lf: &logrus.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: time.StampMilli,
		},
	})
	return logger
}

// LogError logs an error with context if it is non-nil.
func LogError(log logrus.FieldLogger, context string, err error) {
	if err != nil {
		log.WithError(err).Error(context)
	}
}
