// Package services implements the three layout planners: the swap size
// advisor, the erase-and-autopartition planner and the replace-partition
// planner. Planners are synchronous and hold no state across calls; every
// call takes a device/options snapshot and returns a fully formed Plan.
package services

import (
	"github.com/dr460nf1r3/calamares/internal/types"
)

// SuggestSwapSize recommends a swap partition size in bytes from the
// machine's RAM and the free space available after boot partitions.
//
// Sizing ramps up to twice the RAM for small machines, holds at 8 GiB
// through the mid range, then follows RAM for larger machines. SwapSmall
// additionally caps the result at 8 GiB and at 10% of the available space;
// SwapFull skips both caps because a hibernation image must fit the full
// RAM contents no matter what it costs in disk.
//
// overestimationFactor (>= 1.0) corrects for the firmware reporting less
// RAM than is physically installed. The function is pure: no I/O, no
// mutation, deterministic in its four inputs.
func SuggestSwapSize(availableSpaceB uint64, choice types.SwapChoice, ramB uint64, overestimationFactor float64) uint64 {
	if choice != types.SwapSmall && choice != types.SwapFull {
		return 0
	}

	ensureSuspendToDisk := choice == types.SwapFull

	var suggestedB uint64
	switch {
	case ramB <= 4*types.GiB:
		suggestedB = ramB * 2
	case ramB <= 8*types.GiB:
		suggestedB = 8 * types.GiB
	default:
		suggestedB = ramB
	}

	// Top out at 8 GiB when suspend-to-disk does not matter.
	if !ensureSuspendToDisk && suggestedB > 8*types.GiB {
		suggestedB = 8 * types.GiB
	}

	suggestedB = uint64(float64(suggestedB) * overestimationFactor)

	// Never claim more than 10% of the available space unless hibernation
	// requires it.
	if !ensureSuspendToDisk {
		if spaceCap := uint64(0.10 * float64(availableSpaceB)); suggestedB > spaceCap {
			suggestedB = spaceCap
		}
	}

	return suggestedB
}
