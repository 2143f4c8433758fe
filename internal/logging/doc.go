// Package logging provides the structured logging interface shared by the
// verification runner, the calibration benchmarks and the command line. It
// hides the zerolog backend behind a small Logger interface so components can
// be tested against a buffer or a discarding logger.
package logging
