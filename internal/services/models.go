package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dr460nf1r3/calamares/internal/interfaces"
	"github.com/dr460nf1r3/calamares/internal/types"
)

// StepKind discriminates the operations a plan can request from a LayoutApplier.
type StepKind int

const (
	StepCreateTable StepKind = iota
	StepCreatePartition
	StepDeletePartition
	StepRootLayout
)

func (k StepKind) String() string {
	switch k {
	case StepCreateTable:
		return "create-table"
	case StepCreatePartition:
		return "create-partition"
	case StepDeletePartition:
		return "delete-partition"
	case StepRootLayout:
		return "root-layout"
	default:
		return "unknown"
	}
}

// RootLayoutRequest asks the applier to lay out the root filesystem inside
// the given sector range. The applier may subdivide the range further, for
// example into a LUKS container when Passphrase is set.
type RootLayoutRequest struct {
	First      uint64
	Last       uint64
	Passphrase string
}

// PlanStep is one ordered operation of a plan. Exactly one of the payload
// fields is meaningful, selected by Kind.
type PlanStep struct {
	Kind      StepKind
	Table     types.TableType
	Partition types.PlannedPartition
	Delete    types.SectorRange
	Root      RootLayoutRequest
}

// Plan is a fully computed partition layout for one device: an ordered list
// of applier operations plus the decisions that shaped them. Plans are value
// objects; computing one mutates nothing.
type Plan struct {
	ID       uuid.UUID
	Device   *types.Device
	Table    types.TableType
	RootFS   types.FilesystemType
	RootRole types.PartitionRole
	Steps    []PlanStep
	Warnings []string
	// SwapSize is the swap partition size in bytes, 0 when the plan
	// carries no swap.
	SwapSize uint64
}

// Partitions returns the partitions the plan will create, in order.
func (p *Plan) Partitions() []types.PlannedPartition {
	var parts []types.PlannedPartition
	for _, s := range p.Steps {
		if s.Kind == StepCreatePartition {
			parts = append(parts, s.Partition)
		}
	}
	return parts
}

// Apply feeds the plan's steps to the applier in order, stopping at the
// first failure. The plan is one-shot: nothing is retried or rolled back.
func (p *Plan) Apply(applier interfaces.LayoutApplier) error {
	for i, s := range p.Steps {
		var err error
		switch s.Kind {
		case StepCreateTable:
			err = applier.CreatePartitionTable(p.Device, s.Table)
		case StepCreatePartition:
			err = applier.CreatePartition(p.Device, s.Partition)
		case StepDeletePartition:
			err = applier.DeletePartition(p.Device, s.Delete)
		case StepRootLayout:
			err = applier.ApplyRootLayout(p.Device, s.Root.First, s.Root.Last, s.Root.Passphrase)
		default:
			err = fmt.Errorf("unknown step kind %d", s.Kind)
		}
		if err != nil {
			return fmt.Errorf("plan %s step %d (%s): %w", p.ID, i, s.Kind, err)
		}
	}
	return nil
}
