// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// calculation, verification mismatch, etc.) and for carrying the underlying
// cause. The arithmetic kernel itself never returns errors; these types only
// appear from the natural-number layer upward.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Wrapping types implement the Unwrap() method to support errors.Is() and errors.As().
package apperrors
