package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

var linePattern = regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] \[(Info|Warning|Error|Fatal)\] `)

func TestLineFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, logrus.InfoLevel)

	log.Error("App: could not resolve process")
	log.Warn("App: window still settling")
	log.Info("done")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	wantLevels := []string{"[Error]", "[Warning]", "[Info]"}
	for i, line := range lines {
		if !linePattern.MatchString(line) {
			t.Fatalf("line %d has unexpected format: %q", i, line)
		}
		if !strings.Contains(line, wantLevels[i]) {
			t.Fatalf("line %d = %q, want level %s", i, line, wantLevels[i])
		}
	}
	if !strings.HasSuffix(lines[0], "] App: could not resolve process") {
		t.Fatalf("unexpected message: %q", lines[0])
	}
}

func TestLineFormatter_FieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, logrus.InfoLevel)

	log.WithFields(logrus.Fields{
		"pid":   42,
		"code":  3,
		"error": errors.New("bad window"),
		"name":  "App",
	}).Error("placement failed")

	got := strings.TrimSpace(buf.String())
	if !strings.HasSuffix(got, `placement failed code=3 error="bad window" name="App" pid=42`) {
		t.Fatalf("unexpected line: %q", got)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, logrus.ErrorLevel)

	log.Info("hidden")
	log.Warn("hidden")
	log.Error("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("expected lower levels to be filtered, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected error entry, got %q", buf.String())
	}
}

func TestLogger_FatalLevelLabel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, logrus.InfoLevel)

	// Log does not exit for FatalLevel; only Logger.Fatal does.
	log.Log(logrus.FatalLevel, "config missing")

	if !strings.Contains(buf.String(), "[Fatal] config missing") {
		t.Fatalf("unexpected line: %q", buf.String())
	}
}

func TestAppendFile_CreatesLazilyAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "winplace", "winplace.log")
	log := New(Config{FilePath: path, Level: logrus.WarnLevel})

	log.Info("filtered")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file before the first write, stat err = %v", err)
	}

	log.Error("first")
	log.Error("second")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", string(data))
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Fatalf("expected 0600 permissions, got %o", perm)
	}

	// A second logger on the same path appends instead of truncating.
	New(Config{FilePath: path, Level: logrus.WarnLevel}).Error("third")
	data, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Count(string(data), "\n") != 3 {
		t.Fatalf("expected 3 lines after reopen, got %q", string(data))
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in      string
		want    logrus.Level
		wantErr bool
	}{
		{in: "", want: logrus.WarnLevel},
		{in: "info", want: logrus.InfoLevel},
		{in: "warning", want: logrus.WarnLevel},
		{in: "warn", want: logrus.WarnLevel},
		{in: "ERROR", want: logrus.ErrorLevel},
		{in: "loud", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseLevel(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseLevel(%q) expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseLevel(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
