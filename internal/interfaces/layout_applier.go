// File: internal/interfaces/layout_applier.go
package interfaces

import (
	"github.com/dr460nf1r3/calamares/internal/types"
)

// LayoutApplier executes a computed plan against a device. Implementations
// perform the actual partition-table mutation (or record it, for dry runs);
// the planners themselves never touch the device. Requests arrive in plan
// order and are not retried by the planner on failure.
type LayoutApplier interface {
	// CreatePartitionTable replaces the partition table on the device
	CreatePartitionTable(dev *types.Device, table types.TableType) error

	// CreatePartition creates and formats one planned partition
	CreatePartition(dev *types.Device, part types.PlannedPartition) error

	// DeletePartition removes the partition occupying the given range
	DeletePartition(dev *types.Device, sectors types.SectorRange) error

	// ApplyRootLayout hands the root sector range to the root-layout
	// machinery, which may subdivide it further (for example into an
	// encrypted container when passphrase is non-empty)
	ApplyRootLayout(dev *types.Device, first, last uint64, passphrase string) error
}
