package procutil

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

type toolhelpSnapshot struct {
	handle  windows.Handle
	entry   windows.ProcessEntry32
	started bool
}

// OpenSnapshot takes a toolhelp snapshot of all running processes.
func OpenSnapshot() (Snapshot, error) {
	h, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return nil, fmt.Errorf("create toolhelp snapshot: %w", err)
	}
	s := &toolhelpSnapshot{handle: h}
	s.entry.Size = uint32(unsafe.Sizeof(s.entry))
	return s, nil
}

func (s *toolhelpSnapshot) Next() (Entry, bool, error) {
	var err error
	if !s.started {
		s.started = true
		err = windows.Process32First(s.handle, &s.entry)
	} else {
		err = windows.Process32Next(s.handle, &s.entry)
	}
	if errors.Is(err, windows.ERROR_NO_MORE_FILES) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, err
	}
	return Entry{PID: int(s.entry.ProcessID), PPID: int(s.entry.ParentProcessID)}, true, nil
}

func (s *toolhelpSnapshot) Close() error {
	return windows.CloseHandle(s.handle)
}
