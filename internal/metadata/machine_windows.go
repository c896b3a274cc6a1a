package metadata

import "os"

// HostMachine returns the processor architecture reported by Windows, e.g.
// "AMD64", or "" if it cannot be determined. A 32-bit process on a 64-bit
// host reports the host architecture.
func HostMachine() string {
	if arch := os.Getenv("PROCESSOR_ARCHITEW6432"); arch != "" {
		return arch
	}
	return os.Getenv("PROCESSOR_ARCHITECTURE")
}
