//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly && !windows

package metadata

// HostMachine is unknown on this platform.
func HostMachine() string {
	return ""
}
