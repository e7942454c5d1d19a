// Package logging provides the run log: an append-only text file with one
// "[timestamp] [Level] message" line per entry.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

const timestampLayout = "2006-01-02 15:04:05"

// DefaultLevel is used when no level is configured.
const DefaultLevel = logrus.WarnLevel

// Config holds configuration for the run logger.
type Config struct {
	FilePath string
	Level    logrus.Level
}

// New creates a logger that appends to cfg.FilePath. Nothing is created on
// disk until the first entry is written.
func New(cfg Config) *logrus.Logger {
	return NewWithWriter(&AppendFile{Path: cfg.FilePath}, cfg.Level)
}

// NewWithWriter creates a logger with the line format writing to w.
func NewWithWriter(w io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&LineFormatter{})
	l.SetLevel(level)
	return l
}

// ParseLevel converts a level name to a logrus level. An empty string
// yields DefaultLevel.
func ParseLevel(s string) (logrus.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultLevel, nil
	}
	level, err := logrus.ParseLevel(s)
	if err != nil {
		return DefaultLevel, fmt.Errorf("invalid log level %q: must be one of info, warning, error", s)
	}
	return level, nil
}

// LevelName returns the label written between brackets for a level.
func LevelName(level logrus.Level) string {
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel:
		return "Fatal"
	case logrus.ErrorLevel:
		return "Error"
	case logrus.WarnLevel:
		return "Warning"
	case logrus.InfoLevel:
		return "Info"
	default:
		return "Debug"
	}
}

// LineFormatter renders entries as
//
//	[2006-01-02 15:04:05] [Level] message key=value ...
//
// using local time. Fields are appended in sorted order.
type LineFormatter struct{}

func (f *LineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	b.WriteByte('[')
	b.WriteString(entry.Time.Local().Format(timestampLayout))
	b.WriteString("] [")
	b.WriteString(LevelName(entry.Level))
	b.WriteString("] ")
	b.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for k := range entry.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			switch val := entry.Data[k].(type) {
			case string:
				fmt.Fprintf(b, " %s=%q", k, val)
			case error:
				fmt.Fprintf(b, " %s=%q", k, val.Error())
			default:
				fmt.Fprintf(b, " %s=%v", k, val)
			}
		}
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// AppendFile is an io.Writer that opens Path, appends, and closes it again
// on every write. The parent directory is created on demand.
type AppendFile struct {
	Path string
}

func (a *AppendFile) Write(p []byte) (int, error) {
	if dir := filepath.Dir(a.Path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("failed to create log directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(a.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return 0, fmt.Errorf("failed to open log file %s: %w", a.Path, err)
	}

	n, err := f.Write(p)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return n, err
}
