//go:build !linux && !windows

package procutil

// OpenSnapshot is not available here; Native is used instead.
func OpenSnapshot() (Snapshot, error) {
	return nil, ErrSnapshotUnsupported
}
