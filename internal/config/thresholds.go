package config

import "github.com/agbru/mpkernel/internal/kernel"

// Karatsuba threshold resolution chain (highest priority first):
//   1. -karatsuba-threshold flag
//   2. MPCALC_KARATSUBA_THRESHOLD
//   3. Cached calibration profile (~/.mpcalc_calibration.json)
//   4. kernel.DefaultKaratsubaThreshold

// ResolveKaratsubaThreshold returns the cutover the run should install.
// profileThreshold is the value from a valid calibration profile, or zero
// when none was found.
func ResolveKaratsubaThreshold(cfg AppConfig, profileThreshold int) int {
	switch {
	case cfg.KaratsubaThreshold > 0:
		return cfg.KaratsubaThreshold
	case profileThreshold > 0:
		return profileThreshold
	default:
		return kernel.DefaultKaratsubaThreshold
	}
}
