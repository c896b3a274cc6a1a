package procutil

// Windows has no getppid; the toolhelp snapshot is used instead.
const nativeParentPID = false
