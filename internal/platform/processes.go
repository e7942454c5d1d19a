package platform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// FindProcesses returns the running processes whose name matches name,
// ordered by pid. Processes that exit or deny access while being listed
// are skipped.
func FindProcesses(name string) ([]Process, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	var out []Process
	for _, p := range procs {
		pname, err := p.Name()
		if err != nil {
			continue
		}
		if !MatchesProcessName(pname, name) {
			continue
		}
		out = append(out, Process{PID: int(p.Pid), Name: pname})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].PID < out[j].PID
	})
	return out, nil
}

// MatchesProcessName reports whether a process called actual answers to
// want. The comparison is case-sensitive; a trailing ".exe" on actual is
// ignored.
func MatchesProcessName(actual, want string) bool {
	if want == "" {
		return false
	}
	return actual == want || strings.TrimSuffix(actual, ".exe") == want
}
