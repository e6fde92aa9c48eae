package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dr460nf1r3/calamares/internal/apply"
	"github.com/dr460nf1r3/calamares/internal/config"
	"github.com/dr460nf1r3/calamares/internal/system"
	"github.com/dr460nf1r3/calamares/internal/types"
)

// An autopartition plan applied to the recorder arrives as the ordered
// request sequence the LayoutApplier contract promises: table, ESP, root
// layout, swap.
func TestPlan_ApplyFeedsApplierInOrder(t *testing.T) {
	dev, err := types.NewDevice("/dev/sda", 512, 41943040)
	require.NoError(t, err)

	planner, err := NewAutoLayoutPlanner(
		system.FixedMemory{RAMBytes: 16 * types.GiB, Overestimation: 1.0},
		system.FixedFirmware{EFI: true},
		config.EmptySnapshot(),
		zerolog.Nop(),
	)
	require.NoError(t, err)

	plan, err := planner.Plan(dev, types.AutoPartitionOptions{
		Swap:          types.SwapSmall,
		RequiredSpace: 8 * types.GiB,
	})
	require.NoError(t, err)

	recorder := apply.NewRecorder(zerolog.Nop())
	require.NoError(t, plan.Apply(recorder))

	reqs := recorder.Requests()
	require.Len(t, reqs, 4)
	assert.Equal(t, apply.RequestCreateTable, reqs[0].Kind)
	assert.Equal(t, types.TableTypeGPT, reqs[0].Table)
	assert.Equal(t, apply.RequestCreatePartition, reqs[1].Kind)
	assert.Equal(t, types.FlagESP, reqs[1].Partition.Flag)
	assert.Equal(t, apply.RequestRootLayout, reqs[2].Kind)
	assert.Equal(t, apply.RequestCreatePartition, reqs[3].Kind)
	assert.Equal(t, types.FilesystemLinuxSwap, reqs[3].Partition.Filesystem)
}

func TestStepKind_String(t *testing.T) {
	assert.Equal(t, "create-table", StepCreateTable.String())
	assert.Equal(t, "create-partition", StepCreatePartition.String())
	assert.Equal(t, "delete-partition", StepDeletePartition.String())
	assert.Equal(t, "root-layout", StepRootLayout.String())
}
