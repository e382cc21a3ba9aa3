//go:build !amd64 && !arm64

package lanes

func init() {
	// No vector capability known for this architecture; every descriptor
	// degrades to the scalar register kind.
	initCapabilities()
}
