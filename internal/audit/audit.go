// Package audit writes the append-only action log (bitácora). Each record is
// one plain-text line:
//
//	[2025-01-01 09:30:00] Usuario ana@example.com realizó ENTRADA
//
// The trail only records session events (login/logout); it is not a
// structured application log.
package audit

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Actions recorded in the trail.
const (
	ActionLogin  = "ENTRADA"
	ActionLogout = "SALIDA"
)

const timestampLayout = "2006-01-02 15:04:05"

// lineFormatter renders a logrus entry as a single bitácora line.
type lineFormatter struct{}

func (lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	user, _ := e.Data["user"].(string)
	line := fmt.Sprintf("[%s] Usuario %s realizó %s\n",
		e.Time.Format(timestampLayout), user, e.Message)
	return []byte(line), nil
}

// Trail appends session records to a log file.
type Trail struct {
	log  *logrus.Logger
	file *os.File
}

// New opens (or creates) the trail file in append mode.
func New(path string) (*Trail, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open audit trail %s: %w", path, err)
	}
	return &Trail{log: newLogger(f), file: f}, nil
}

// NewWithWriter builds a trail over an arbitrary writer; used in tests.
func NewWithWriter(w io.Writer) *Trail {
	return &Trail{log: newLogger(w)}
}

func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(lineFormatter{})
	log.SetLevel(logrus.InfoLevel)
	return log
}

// Record appends one "[timestamp] Usuario <user> realizó <action>" line.
func (t *Trail) Record(user, action string) {
	t.log.WithField("user", user).Info(action)
}

// Close closes the underlying file, if any.
func (t *Trail) Close() error {
	if t.file == nil {
		return nil
	}
	return t.file.Close()
}
