//go:build !kerneldebug

package kernel

const debugAssertions = false
