package services

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dr460nf1r3/calamares/internal/types"
)

// ReplacementPlanner computes replace-partition plans: the role the
// replacement must take in the table, a delete step when a live partition
// is being overwritten, and a root layout request reusing its sector range.
type ReplacementPlanner struct {
	log zerolog.Logger
}

// NewReplacementPlanner returns a planner logging through the given logger.
func NewReplacementPlanner(log zerolog.Logger) *ReplacementPlanner {
	return &ReplacementPlanner{log: log}
}

// Plan computes the replacement plan for one existing partition or
// free-space region.
//
// Role inference: an extended container is replaced by a primary partition;
// a free-space region defaults to primary unless it sits inside an extended
// container, which makes the replacement logical; anything else keeps its
// current role. Picking free space is legal but surfaced as a warning.
func (p *ReplacementPlanner) Plan(dev *types.Device, existing *types.ExistingPartition, o types.ReplaceOptions) (*Plan, error) {
	p.log.Debug().Str("partition", existing.Path).Msg("planning partition replacement")

	newRole := existing.Roles
	if existing.Roles.Has(types.RoleExtended) {
		newRole = types.RolePrimary
	}

	plan := &Plan{
		ID:     uuid.New(),
		Device: dev,
	}

	if existing.IsFreeSpace() {
		newRole = types.RolePrimary
		p.log.Warn().Str("partition", existing.Path).Msg("selected partition is free space")
		plan.Warnings = append(plan.Warnings, "selected partition is free space")
		if existing.Parent != nil && existing.Parent.Roles.Has(types.RoleExtended) {
			newRole = types.RoleLogical
		}
	}
	plan.RootRole = newRole

	// Capture the range now: deleting the partition invalidates its
	// descriptor.
	sectors := existing.Sectors
	if !existing.IsFreeSpace() {
		plan.Steps = append(plan.Steps, PlanStep{Kind: StepDeletePartition, Delete: sectors})
	}

	plan.Steps = append(plan.Steps, PlanStep{
		Kind: StepRootLayout,
		Root: RootLayoutRequest{First: sectors.First, Last: sectors.Last, Passphrase: o.Passphrase},
	})

	p.log.Info().
		Stringer("plan", plan.ID).
		Str("device", dev.Path).
		Stringer("role", newRole).
		Stringer("sectors", sectors).
		Msg("computed replacement plan")

	return plan, nil
}
