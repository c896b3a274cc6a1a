// Package procutil identifies the interactive shell that launched the
// current process by resolving the parent process id.
//
// Platforms with a native parent-pid primitive use it directly. Elsewhere
// the parent is found by scanning a system-wide process snapshot. Neither
// path reports errors: an unknown parent is NoParent.
package procutil

import "os"

// NoParent is returned when the parent process cannot be determined.
const NoParent = 0

// Resolver returns the parent process id of the current process.
type Resolver interface {
	ParentPID() int
}

// Native asks the operating system directly.
type Native struct{}

// ParentPID implements Resolver.
func (Native) ParentPID() int {
	return os.Getppid()
}

// Static always reports the same pid.
type Static int

// ParentPID implements Resolver.
func (s Static) ParentPID() int {
	return int(s)
}

// Default picks the resolver for the running platform.
func Default() Resolver {
	if nativeParentPID {
		return Native{}
	}
	return NewSnapshotResolver()
}
