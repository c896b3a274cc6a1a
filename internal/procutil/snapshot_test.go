package procutil

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSnapshot struct {
	entries []Entry
	failAt  int // index at which Next fails; -1 disables
	pos     int
	closed  int
}

func (f *fakeSnapshot) Next() (Entry, bool, error) {
	if f.failAt >= 0 && f.pos == f.failAt {
		return Entry{}, false, errors.New("snapshot read failed")
	}
	if f.pos >= len(f.entries) {
		return Entry{}, false, nil
	}
	e := f.entries[f.pos]
	f.pos++
	return e, true, nil
}

func (f *fakeSnapshot) Close() error {
	f.closed++
	return nil
}

func openFake(snap *fakeSnapshot) OpenFunc {
	return func() (Snapshot, error) { return snap, nil }
}

func TestParentFromSnapshot(t *testing.T) {
	entries := []Entry{
		{PID: 1, PPID: 0},
		{PID: 300, PPID: 1},
		{PID: 4242, PPID: 300},
		{PID: 5000, PPID: 4242},
	}

	tests := []struct {
		name   string
		pid    int
		failAt int
		want   int
	}{
		{name: "found", pid: 4242, failAt: -1, want: 300},
		{name: "found first entry", pid: 1, failAt: -1, want: 0},
		{name: "found last entry", pid: 5000, failAt: -1, want: 4242},
		{name: "not found", pid: 9999, failAt: -1, want: NoParent},
		{name: "iteration error before match", pid: 5000, failAt: 2, want: NoParent},
		{name: "iteration error after match", pid: 300, failAt: 3, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := &fakeSnapshot{entries: entries, failAt: tt.failAt}
			got := ParentFromSnapshot(openFake(snap), tt.pid)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 1, snap.closed, "snapshot must be released exactly once")
		})
	}
}

func TestParentFromSnapshot_OpenFails(t *testing.T) {
	open := func() (Snapshot, error) { return nil, ErrSnapshotUnsupported }
	assert.Equal(t, NoParent, ParentFromSnapshot(open, os.Getpid()))
}

func TestParentFromSnapshot_EmptySnapshot(t *testing.T) {
	snap := &fakeSnapshot{failAt: -1}
	assert.Equal(t, NoParent, ParentFromSnapshot(openFake(snap), 1))
	assert.Equal(t, 1, snap.closed)
}

func TestSnapshotResolver(t *testing.T) {
	snap := &fakeSnapshot{
		entries: []Entry{{PID: 10, PPID: 7}, {PID: 11, PPID: 10}},
		failAt:  -1,
	}
	r := NewSnapshotResolverWith(openFake(snap), func() int { return 11 })
	assert.Equal(t, 10, r.ParentPID())
	assert.Equal(t, 1, snap.closed)
}

func TestStatic(t *testing.T) {
	var r Resolver = Static(1234)
	assert.Equal(t, 1234, r.ParentPID())
}

func TestNative(t *testing.T) {
	assert.Equal(t, os.Getppid(), Native{}.ParentPID())
}

func TestDefault(t *testing.T) {
	r := Default()
	require.NotNil(t, r)
	if nativeParentPID {
		assert.IsType(t, Native{}, r)
	} else {
		assert.IsType(t, &SnapshotResolver{}, r)
	}
}
