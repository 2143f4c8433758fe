package kernel

import "fmt"

// assert panics with a formatted message when cond is false and the package
// was built with the kerneldebug tag. Arguments are still evaluated in
// release builds, so linear-time checks sit behind an explicit
// debugAssertions test.
func assert(cond bool, format string, args ...any) {
	if debugAssertions && !cond {
		panic(fmt.Sprintf("kernel: "+format, args...))
	}
}
