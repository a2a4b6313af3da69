//go:build debug

package session

import "fmt"

// assertf aborts on violated internal consistency checks in debug builds.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
