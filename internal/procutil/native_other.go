//go:build !windows

package procutil

const nativeParentPID = true
