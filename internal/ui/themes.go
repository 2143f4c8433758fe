package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for UI output.
// Each field contains an ANSI escape code for the corresponding color category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary string
	// Secondary is used for less prominent elements.
	Secondary string
	// Success marks passing checks and final results.
	Success string
	// Warning is used for caution messages or non-critical issues.
	Warning string
	// Error marks failing checks and errors.
	Error string
	// Info is used for informational messages.
	Info string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Info:      "\033[38;5;141m", // Purple
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set or -no-color flag is provided.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// Styles holds the lipgloss styles used to render report tables
// (verification checks, calibration sweeps).
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Pass   lipgloss.Style
	Fail   lipgloss.Style
	Dim    lipgloss.Style
}

func newStyles(accent, text, pass, fail, dim lipgloss.TerminalColor) Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		Header: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(text),
		Label:  lipgloss.NewStyle().Foreground(dim).Width(24),
		Value:  lipgloss.NewStyle().Foreground(text),
		Pass:   lipgloss.NewStyle().Bold(true).Foreground(pass),
		Fail:   lipgloss.NewStyle().Bold(true).Foreground(fail),
		Dim:    lipgloss.NewStyle().Foreground(dim),
	}
}

var (
	darkStyles = newStyles(
		lipgloss.Color("#4488FF"),
		lipgloss.Color("#E0E0E0"),
		lipgloss.Color("#9ece6a"),
		lipgloss.Color("#FF4444"),
		lipgloss.Color("#666666"),
	)
	noColorStyles = newStyles(
		lipgloss.NoColor{}, lipgloss.NoColor{}, lipgloss.NoColor{}, lipgloss.NoColor{}, lipgloss.NoColor{},
	)
)

// CurrentStyles returns the report styles matching the active theme.
func CurrentStyles() Styles {
	themeMutex.RLock()
	defer themeMutex.RUnlock()

	if currentTheme.Name == NoColorTheme.Name {
		return noColorStyles
	}
	return darkStyles
}

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// InitTheme initializes the theme based on the noColor flag and environment.
// It respects the NO_COLOR environment variable (https://no-color.org/).
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}
	// Any value, even empty, disables colors.
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = DarkTheme
}
