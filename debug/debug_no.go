//go:build !debug

package debug

// Debug reports whether the package was built with the debug tag.
const Debug = false
