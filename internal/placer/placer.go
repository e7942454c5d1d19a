// Package placer moves the main window of each configured process to its
// configured geometry.
package placer

import (
	"errors"
	"fmt"
	"math"

	"github.com/1broseidon/winplace/internal/config"
	"github.com/1broseidon/winplace/internal/platform"
	"github.com/sirupsen/logrus"
)

// ErrProcessNotFound is reported when no running process has the entry's
// name.
var ErrProcessNotFound = errors.New("could not resolve process")

// Summary counts what a Place run did.
type Summary struct {
	Entries int // entries processed
	Placed  int // entries whose placement calls all succeeded
	Failed  int // entries skipped or aborted on an error
	Calls   int // placement calls issued, including failed ones
}

// Placer applies a settings table through a platform backend. Every
// problem is logged and confined to its own entry.
type Placer struct {
	backend platform.Backend
	log     logrus.FieldLogger
}

// New creates a placer.
func New(backend platform.Backend, log logrus.FieldLogger) *Placer {
	return &Placer{backend: backend, log: log}
}

// Place processes every entry of table in name order. It never stops early:
// a failure on one entry is logged and the next entry is processed.
func (p *Placer) Place(table config.Table) Summary {
	var s Summary
	for _, name := range table.Names() {
		s.Entries++
		calls, err := p.placeEntry(name, table[name])
		s.Calls += calls
		if err != nil {
			s.Failed++
			continue
		}
		s.Placed++
	}

	p.log.WithFields(logrus.Fields{
		"entries": s.Entries,
		"placed":  s.Placed,
		"failed":  s.Failed,
		"calls":   s.Calls,
	}).Info("placement finished")
	return s
}

// Attempts is the number of placement calls made for a setting: one, plus
// Repeat more. The count saturates at math.MaxInt.
func Attempts(setting config.WindowSetting) int {
	switch {
	case setting.Repeat < 0:
		return 1
	case setting.Repeat == math.MaxInt:
		return math.MaxInt
	}
	return setting.Repeat + 1
}

func (p *Placer) placeEntry(name string, setting config.WindowSetting) (int, error) {
	procs, err := p.backend.FindProcesses(name)
	if err != nil {
		p.log.Errorf("%s: process lookup failed: %v", name, err)
		return 0, err
	}
	if len(procs) == 0 {
		p.log.Errorf("%s: %v", name, ErrProcessNotFound)
		return 0, ErrProcessNotFound
	}
	proc := procs[0]
	if len(procs) > 1 {
		p.log.Infof("%s: %d processes match, using pid %d", name, len(procs), proc.PID)
	}

	window, err := p.backend.MainWindow(proc.PID)
	if err == nil && window == 0 {
		err = platform.ErrNullHandle
	}
	if err != nil {
		switch {
		case errors.Is(err, platform.ErrNoMainWindow):
			p.log.Errorf("%s: process %d has no main window; it may not have opened one yet", name, proc.PID)
		case errors.Is(err, platform.ErrNullHandle):
			p.log.Errorf("%s: main window handle of process %d is null", name, proc.PID)
		default:
			p.log.Errorf("%s: failed to resolve main window of process %d: %v", name, proc.PID, err)
		}
		return 0, err
	}

	placement := platform.Placement{
		Bounds: platform.Rect{
			X:      setting.X,
			Y:      setting.Y,
			Width:  setting.Width,
			Height: setting.Height,
		},
		ZOrder: platform.ZOrderTop,
		Flags:  platform.FlagShowWindow,
	}

	// Some applications ignore the first request while they are still
	// settling, so the call is repeated Repeat more times.
	attempts := Attempts(setting)
	for i := 0; i < attempts; i++ {
		if err := p.backend.Place(window, placement); err != nil {
			p.log.Errorf("%s: placement %d of %d failed for window 0x%x: %v (last error %d)",
				name, i+1, attempts, uint32(window), err, platform.ErrorCode(err))
			return i + 1, fmt.Errorf("%s: placement %d of %d: %w", name, i+1, attempts, err)
		}
	}
	p.log.Debugf("%s: placed window 0x%x at %d,%d %dx%d", name, uint32(window),
		setting.X, setting.Y, setting.Width, setting.Height)
	return attempts, nil
}
