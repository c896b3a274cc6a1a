package procutil

import (
	"fmt"

	"github.com/prometheus/procfs"
)

type procSnapshot struct {
	procs procfs.Procs
	next  int
}

// OpenSnapshot enumerates /proc.
func OpenSnapshot() (Snapshot, error) {
	fs, err := procfs.NewDefaultFS()
	if err != nil {
		return nil, fmt.Errorf("open procfs: %w", err)
	}
	procs, err := fs.AllProcs()
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}
	return &procSnapshot{procs: procs}, nil
}

func (s *procSnapshot) Next() (Entry, bool, error) {
	for s.next < len(s.procs) {
		p := s.procs[s.next]
		s.next++
		stat, err := p.Stat()
		if err != nil {
			// exited after enumeration
			continue
		}
		return Entry{PID: p.PID, PPID: stat.PPID}, true, nil
	}
	return Entry{}, false, nil
}

func (s *procSnapshot) Close() error {
	s.procs = nil
	return nil
}
