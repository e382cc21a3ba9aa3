//go:build arm64

package lanes

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

func init() {
	// Advanced SIMD is mandatory on ARMv8. On darwin the kernel does not
	// expose the hwcap bits x/sys/cpu reads, so treat Apple Silicon as
	// NEON-capable unconditionally.
	hasNEON = cpu.ARM64.HasASIMD || runtime.GOOS == "darwin"
	initCapabilities()
}
