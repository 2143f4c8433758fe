// Package ui provides theme and color support for the calculator's output.
// It defines ANSI color schemes for line-oriented messages and lipgloss
// styles for the verification and calibration report tables.
package ui
