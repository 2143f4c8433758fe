// Package calibration measures where Karatsuba multiplication starts to beat
// schoolbook multiplication on the current machine and persists the cutover
// in a calibration profile.
// This file implements calibration profile persistence.
package calibration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/agbru/mpkernel/internal/sysmon"
)

// Profile stores the results of a calibration run.
// It captures both the measured cutover and the hardware context
// to allow validation of cached results.
type Profile struct {
	// Hardware identification
	CPUModel    string   `json:"cpu_model"`
	CPUFeatures []string `json:"cpu_features,omitempty"`
	NumCPU      int      `json:"num_cpu"`
	GOARCH      string   `json:"goarch"`
	GOOS        string   `json:"goos"`
	GoVersion   string   `json:"go_version"`
	WordSize    int      `json:"word_size"` // 32 or 64

	// KaratsubaThreshold is the calibrated cutover in words.
	KaratsubaThreshold int `json:"karatsuba_threshold"`

	// Measurements are the per-size timings the threshold was derived from.
	Measurements []Measurement `json:"measurements,omitempty"`

	// SystemCPUPercent is the system-wide CPU load sampled before measuring.
	SystemCPUPercent float64 `json:"system_cpu_percent"`

	// Calibration metadata
	CalibratedAt    time.Time `json:"calibrated_at"`
	CalibrationTime string    `json:"calibration_time"`

	// Version for forward compatibility
	ProfileVersion int `json:"profile_version"`
}

const (
	// CurrentProfileVersion is the current version of the profile format.
	// Increment this when making breaking changes to the profile structure.
	CurrentProfileVersion = 1

	// DefaultProfileFileName is the default name for the calibration profile file.
	DefaultProfileFileName = ".mpcalc_calibration.json"

	// DefaultMaxProfileAge is how long a profile is trusted before the
	// application suggests recalibrating.
	DefaultMaxProfileAge = 30 * 24 * time.Hour
)

// GetDefaultProfilePath returns the default path for the calibration profile.
// It uses the user's home directory if available, otherwise the current directory.
func GetDefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultProfileFileName
	}
	return filepath.Join(home, DefaultProfileFileName)
}

// NewProfile creates a new Profile with current hardware info.
func NewProfile() *Profile {
	return &Profile{
		CPUModel:       getCPUModel(),
		CPUFeatures:    cpuFeatures(),
		NumCPU:         runtime.NumCPU(),
		GOARCH:         runtime.GOARCH,
		GOOS:           runtime.GOOS,
		GoVersion:      runtime.Version(),
		WordSize:       32 << (^uint(0) >> 63), // 32 or 64
		CalibratedAt:   time.Now(),
		ProfileVersion: CurrentProfileVersion,
	}
}

// getCPUModel returns the CPU model name, falling back to a coarse
// arch/core-count identifier. The feature list recorded next to it is what
// actually distinguishes machines of the same arch.
func getCPUModel() string {
	if model := sysmon.CPUModel(); model != "" {
		return model
	}
	return fmt.Sprintf("%s-%d-cores", runtime.GOARCH, runtime.NumCPU())
}

// LoadProfile loads a calibration profile from the specified path.
// If path is empty, uses the default profile path.
func LoadProfile(path string) (*Profile, error) {
	if path == "" {
		path = GetDefaultProfilePath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var profile Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	return &profile, nil
}

// SaveProfile saves the calibration profile to the specified path.
// If path is empty, uses the default profile path.
func (p *Profile) SaveProfile(path string) error {
	if path == "" {
		path = GetDefaultProfilePath()
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}

	return nil
}

// IsValid checks if the profile is usable on the current hardware: same
// format version, architecture, word size and CPU feature set, and a
// positive threshold.
func (p *Profile) IsValid() bool {
	if p == nil {
		return false
	}
	if p.ProfileVersion != CurrentProfileVersion {
		return false
	}
	if p.GOARCH != runtime.GOARCH {
		return false
	}
	if p.WordSize != 32<<(^uint(0)>>63) {
		return false
	}
	if !slices.Equal(p.CPUFeatures, cpuFeatures()) {
		return false
	}
	return p.KaratsubaThreshold > 0
}

// IsStale checks if the profile is older than the given duration.
func (p *Profile) IsStale(maxAge time.Duration) bool {
	if p == nil {
		return true
	}
	return time.Since(p.CalibratedAt) > maxAge
}

// String returns a human-readable summary of the profile.
func (p *Profile) String() string {
	if p == nil {
		return "<nil profile>"
	}
	features := "none"
	if len(p.CPUFeatures) > 0 {
		features = strings.Join(p.CPUFeatures, ",")
	}
	return fmt.Sprintf("Profile[%s, %s/%s, %d-bit, features=%s, karatsuba=%d words, calibrated %s]",
		p.CPUModel, p.GOOS, p.GOARCH, p.WordSize, features, p.KaratsubaThreshold,
		p.CalibratedAt.Format(time.RFC3339))
}

// CachedThreshold is the outcome of looking up a saved calibration.
type CachedThreshold struct {
	// Threshold is the calibrated cutover, or zero when the profile is
	// missing or was made on different hardware.
	Threshold int
	// Stale reports a usable profile older than DefaultMaxProfileAge.
	Stale bool
	// Age is how long ago the profile was calibrated.
	Age time.Duration
}

// LoadCachedThreshold returns the Karatsuba threshold from a valid profile
// at path, with a staleness hint. A profile made on other hardware yields a
// zero threshold and no error.
func LoadCachedThreshold(path string) (CachedThreshold, error) {
	profile, err := LoadProfile(path)
	if err != nil {
		return CachedThreshold{}, err
	}
	if !profile.IsValid() {
		return CachedThreshold{}, nil
	}
	return CachedThreshold{
		Threshold: profile.KaratsubaThreshold,
		Stale:     profile.IsStale(DefaultMaxProfileAge),
		Age:       time.Since(profile.CalibratedAt),
	}, nil
}
