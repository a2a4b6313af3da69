//go:build !debug

package session

// assertf is a no-op in release builds; consistency violations it would
// catch indicate modeling bugs, not runtime conditions.
func assertf(bool, string, ...any) {}
