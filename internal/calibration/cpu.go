package calibration

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// cpuFeatures lists the instruction-set extensions that change the cost of
// word multiplication and carry chains. A cached profile is only reused on
// a CPU with the same list.
func cpuFeatures() []string {
	var features []string
	add := func(name string, ok bool) {
		if ok {
			features = append(features, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add("adx", cpu.X86.HasADX)
		add("bmi2", cpu.X86.HasBMI2)
		add("avx2", cpu.X86.HasAVX2)
		add("avx512f", cpu.X86.HasAVX512F)
	case "arm64":
		add("asimd", cpu.ARM64.HasASIMD)
		add("atomics", cpu.ARM64.HasATOMICS)
		add("sve", cpu.ARM64.HasSVE)
	}
	return features
}
