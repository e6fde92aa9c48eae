// Package types defines the value objects shared by the layout planners:
// devices, sector ranges, partition roles and the option bundles that
// drive a planning call. All sizes are bytes unless a name says otherwise;
// all positions are logical sectors.
package types

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Binary size units.
const (
	MiB uint64 = 1 << 20
	GiB uint64 = 1 << 30
)

// SectorRange is an inclusive range of logical sectors. It is the core
// currency of every planning decision: planners only ever hand out
// non-overlapping SectorRanges within one device.
type SectorRange struct {
	First uint64
	Last  uint64
}

// Length returns the number of sectors in the range.
func (r SectorRange) Length() uint64 {
	return r.Last - r.First + 1
}

// SizeBytes returns the range size in bytes for the given logical sector size.
func (r SectorRange) SizeBytes(logicalSize uint64) uint64 {
	return r.Length() * logicalSize
}

// Contains reports whether the sector lies inside the range.
func (r SectorRange) Contains(sector uint64) bool {
	return sector >= r.First && sector <= r.Last
}

// Overlaps reports whether two ranges share at least one sector.
func (r SectorRange) Overlaps(other SectorRange) bool {
	return r.First <= other.Last && other.First <= r.Last
}

// Validate checks the first-before-last invariant.
func (r SectorRange) Validate() error {
	if r.First > r.Last {
		return fmt.Errorf("invalid sector range: first %d after last %d", r.First, r.Last)
	}
	return nil
}

func (r SectorRange) String() string {
	return fmt.Sprintf("[%d..%d] (%d sectors)", r.First, r.Last, r.Length())
}

// BytesToSectors converts a byte count to whole logical sectors, truncating
// any fractional remainder. Callers that need a non-empty region must check
// the result is > 0 themselves.
func BytesToSectors(bytes, logicalSize uint64) uint64 {
	return bytes / logicalSize
}

// HumanSize formats a byte count with binary units for logs and CLI output.
func HumanSize(bytes uint64) string {
	return humanize.IBytes(bytes)
}
