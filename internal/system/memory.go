// Package system implements the host-probing collaborators: total memory
// for swap sizing and firmware mode detection.
package system

import (
	"fmt"
	"strconv"

	"github.com/shirou/gopsutil/v3/mem"

	"github.com/dr460nf1r3/calamares/internal/interfaces"
)

// defaultOverestimationFactor corrects for the kernel reporting slightly
// less memory than is physically installed (reserved regions, firmware
// carve-outs). Kept small: the figure feeds swap sizing, not accounting.
const defaultOverestimationFactor = 1.01

// GopsutilMemory reads total RAM through gopsutil. It satisfies
// interfaces.MemoryInfoProvider.
type GopsutilMemory struct {
	overestimation float64
}

// NewGopsutilMemory returns a provider using the default overestimation
// factor, or the overestimationFactor configuration value when set.
func NewGopsutilMemory(config interfaces.ConfigSnapshot) (*GopsutilMemory, error) {
	factor := defaultOverestimationFactor
	if config != nil && config.Contains("overestimationFactor") {
		parsed, err := strconv.ParseFloat(config.Value("overestimationFactor"), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid overestimationFactor: %w", err)
		}
		if parsed < 1.0 {
			return nil, fmt.Errorf("overestimationFactor %v below 1.0", parsed)
		}
		factor = parsed
	}
	return &GopsutilMemory{overestimation: factor}, nil
}

// TotalMemory returns the total RAM in bytes and the overestimation factor.
func (g *GopsutilMemory) TotalMemory() (uint64, float64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, 0, fmt.Errorf("reading memory info: %w", err)
	}
	return vm.Total, g.overestimation, nil
}

// FixedMemory reports a constant RAM size, for tests and dry runs.
type FixedMemory struct {
	RAMBytes       uint64
	Overestimation float64
}

// TotalMemory returns the configured values.
func (f FixedMemory) TotalMemory() (uint64, float64, error) {
	return f.RAMBytes, f.Overestimation, nil
}
