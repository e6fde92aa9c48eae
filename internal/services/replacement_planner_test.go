package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dr460nf1r3/calamares/internal/types"
)

func TestReplacementPlanner_RoleInference(t *testing.T) {
	tests := []struct {
		name         string
		roles        types.PartitionRole
		parentRoles  types.PartitionRole
		expectedRole types.PartitionRole
		expectDelete bool
		expectWarn   bool
	}{
		{
			name:         "extended container becomes primary",
			roles:        types.RoleExtended,
			expectedRole: types.RolePrimary,
			expectDelete: true,
		},
		{
			name:         "free space defaults to primary",
			roles:        types.RoleUnallocated,
			expectedRole: types.RolePrimary,
			expectWarn:   true,
		},
		{
			name:         "free space under extended becomes logical",
			roles:        types.RoleUnallocated,
			parentRoles:  types.RoleExtended,
			expectedRole: types.RoleLogical,
			expectWarn:   true,
		},
		{
			name:         "free space under primary stays primary",
			roles:        types.RoleUnallocated,
			parentRoles:  types.RolePrimary,
			expectedRole: types.RolePrimary,
			expectWarn:   true,
		},
		{
			name:         "primary partition keeps its role",
			roles:        types.RolePrimary,
			expectedRole: types.RolePrimary,
			expectDelete: true,
		},
		{
			name:         "logical partition keeps its role",
			roles:        types.RoleLogical,
			parentRoles:  types.RoleExtended,
			expectedRole: types.RoleLogical,
			expectDelete: true,
		},
	}

	dev, err := types.NewDevice("/dev/sda", 512, 41943040)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := &types.ExistingPartition{
				Path:    "/dev/sda3",
				Roles:   tt.roles,
				Sectors: types.SectorRange{First: 1000, Last: 5000},
			}
			if tt.parentRoles != 0 {
				existing.Parent = &types.ExistingPartition{Roles: tt.parentRoles}
			}

			planner := NewReplacementPlanner(zerolog.Nop())
			plan, err := planner.Plan(dev, existing, types.ReplaceOptions{})
			require.NoError(t, err)

			assert.Equal(t, tt.expectedRole, plan.RootRole)

			if tt.expectWarn {
				assert.NotEmpty(t, plan.Warnings)
			} else {
				assert.Empty(t, plan.Warnings)
			}

			var kinds []StepKind
			for _, s := range plan.Steps {
				kinds = append(kinds, s.Kind)
			}
			if tt.expectDelete {
				assert.Equal(t, []StepKind{StepDeletePartition, StepRootLayout}, kinds)
			} else {
				assert.Equal(t, []StepKind{StepRootLayout}, kinds)
			}
		})
	}
}

// The sector range is captured from the descriptor and reused verbatim for
// the replacement root, delete or not.
func TestReplacementPlanner_ReusesSectorRange(t *testing.T) {
	dev, err := types.NewDevice("/dev/sda", 512, 41943040)
	require.NoError(t, err)

	existing := &types.ExistingPartition{
		Path:    "/dev/sda2",
		Roles:   types.RolePrimary,
		Sectors: types.SectorRange{First: 206848, Last: 33554431},
	}

	planner := NewReplacementPlanner(zerolog.Nop())
	plan, err := planner.Plan(dev, existing, types.ReplaceOptions{Passphrase: "hunter2"})
	require.NoError(t, err)

	require.Len(t, plan.Steps, 2)
	assert.Equal(t, existing.Sectors, plan.Steps[0].Delete)

	root := plan.Steps[1].Root
	assert.Equal(t, existing.Sectors.First, root.First)
	assert.Equal(t, existing.Sectors.Last, root.Last)
	assert.Equal(t, "hunter2", root.Passphrase)
}

// Scenario from the free-space path: an unallocated region [1000,5000]
// under an extended container yields (logical, [1000,5000]) and no delete.
func TestReplacementPlanner_FreeSpaceUnderExtended(t *testing.T) {
	dev, err := types.NewDevice("/dev/sda", 512, 41943040)
	require.NoError(t, err)

	existing := &types.ExistingPartition{
		Path:    "/dev/sda-free1",
		Roles:   types.RoleUnallocated,
		Sectors: types.SectorRange{First: 1000, Last: 5000},
		Parent:  &types.ExistingPartition{Roles: types.RoleExtended},
	}

	planner := NewReplacementPlanner(zerolog.Nop())
	plan, err := planner.Plan(dev, existing, types.ReplaceOptions{})
	require.NoError(t, err)

	assert.Equal(t, types.RoleLogical, plan.RootRole)
	require.Len(t, plan.Steps, 1)
	assert.Equal(t, StepRootLayout, plan.Steps[0].Kind)
	assert.Equal(t, uint64(1000), plan.Steps[0].Root.First)
	assert.Equal(t, uint64(5000), plan.Steps[0].Root.Last)
}
