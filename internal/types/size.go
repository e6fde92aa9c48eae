package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// PartitionSize is a configured partition size, given either as an absolute
// value ("300MiB", "512 MB") or as a percentage of the device capacity
// ("10%"). Percentages resolve against the whole device, not against the
// remaining free space.
type PartitionSize struct {
	bytes     uint64
	percent   float64
	isPercent bool
}

// ParsePartitionSize parses a size-or-percentage string.
func ParsePartitionSize(s string) (PartitionSize, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PartitionSize{}, fmt.Errorf("empty partition size")
	}
	if strings.HasSuffix(s, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return PartitionSize{}, fmt.Errorf("invalid percentage %q: %w", s, err)
		}
		if pct < 0 || pct > 100 {
			return PartitionSize{}, fmt.Errorf("percentage %q out of range", s)
		}
		return PartitionSize{percent: pct, isPercent: true}, nil
	}
	b, err := humanize.ParseBytes(s)
	if err != nil {
		return PartitionSize{}, fmt.Errorf("invalid size %q: %w", s, err)
	}
	return PartitionSize{bytes: b}, nil
}

// ToBytes resolves the size against the given device capacity.
func (p PartitionSize) ToBytes(capacity uint64) uint64 {
	if p.isPercent {
		return uint64(p.percent / 100.0 * float64(capacity))
	}
	return p.bytes
}

// IsPercent reports whether the size was given as a percentage.
func (p PartitionSize) IsPercent() bool {
	return p.isPercent
}
