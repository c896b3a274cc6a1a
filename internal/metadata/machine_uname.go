//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package metadata

import "golang.org/x/sys/unix"

// HostMachine returns the hardware name reported by uname(2), e.g.
// "x86_64" or "arm64", or "" if it cannot be determined.
func HostMachine() string {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return ""
	}
	return unix.ByteSliceToString(u.Machine[:])
}
