//go:build amd64

package lanes

import "golang.org/x/sys/cpu"

func init() {
	// SSE2 is part of the x86-64 baseline.
	hasSSE2 = true
	hasAVX2 = cpu.X86.HasAVX2 && cpu.X86.HasFMA
	hasAVX512 = cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW
	initCapabilities()
}
