package procutil

import (
	"errors"
	"os"

	"github.com/irjudson/codalab-cli/internal"
)

// ErrSnapshotUnsupported is returned by OpenSnapshot on platforms without a
// process enumeration primitive.
var ErrSnapshotUnsupported = errors.New("process snapshot not supported on this platform")

// Entry is one process in a snapshot.
type Entry struct {
	PID  int
	PPID int
}

// Snapshot iterates over the processes running when it was taken.
type Snapshot interface {
	// Next returns the next entry. ok is false once the snapshot is exhausted.
	Next() (entry Entry, ok bool, err error)
	Close() error
}

// OpenFunc takes a new snapshot.
type OpenFunc func() (Snapshot, error)

// SnapshotResolver finds the parent pid by scanning a process snapshot.
type SnapshotResolver struct {
	open OpenFunc
	self func() int
}

// NewSnapshotResolver returns a resolver backed by the platform snapshot.
func NewSnapshotResolver() *SnapshotResolver {
	return &SnapshotResolver{open: OpenSnapshot, self: os.Getpid}
}

// NewSnapshotResolverWith returns a resolver over a custom snapshot source
// and current-pid function.
func NewSnapshotResolverWith(open OpenFunc, self func() int) *SnapshotResolver {
	return &SnapshotResolver{open: open, self: self}
}

// ParentPID implements Resolver.
func (r *SnapshotResolver) ParentPID() int {
	return ParentFromSnapshot(r.open, r.self())
}

// ParentFromSnapshot scans a fresh snapshot for pid and returns its recorded
// parent, or NoParent if pid is absent or the snapshot fails. The snapshot
// is always closed before returning.
func ParentFromSnapshot(open OpenFunc, pid int) int {
	snap, err := open()
	if err != nil {
		internal.LogDebug("process snapshot unavailable: %v", err)
		return NoParent
	}
	defer func() {
		if err := snap.Close(); err != nil {
			internal.LogDebug("failed to release process snapshot: %v", err)
		}
	}()

	for {
		entry, ok, err := snap.Next()
		if err != nil {
			internal.LogDebug("process snapshot iteration failed: %v", err)
			return NoParent
		}
		if !ok {
			internal.LogDebug("pid %d not found in process snapshot", pid)
			return NoParent
		}
		if entry.PID == pid {
			return entry.PPID
		}
	}
}
