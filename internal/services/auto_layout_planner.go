package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dr460nf1r3/calamares/internal/interfaces"
	"github.com/dr460nf1r3/calamares/internal/types"
)

// Configuration keys recognized by the autopartition planner.
const (
	ConfigKeyESPSize  = "efiSystemPartitionSize"
	ConfigKeyESPName  = "efiSystemPartitionName"
	ConfigKeySwapName = "swapPartitionName"
)

// defaultESPSize is the EFI System Partition size used when the
// configuration does not override it.
const defaultESPSize = 300 * types.MiB

// requiredSpaceFudge pads the caller's required install space when deciding
// whether swap is affordable.
const requiredSpaceFudge = 600 * types.MiB

// AutoLayoutPlanner computes erase-and-autopartition plans: a partition
// table, an optional ESP, a root layout request and an optional trailing
// swap partition, all as non-overlapping sector ranges.
type AutoLayoutPlanner struct {
	memory   interfaces.MemoryInfoProvider
	firmware interfaces.FirmwareDetector
	config   interfaces.ConfigSnapshot
	log      zerolog.Logger
}

// NewAutoLayoutPlanner wires the planner to its collaborators.
func NewAutoLayoutPlanner(
	memory interfaces.MemoryInfoProvider,
	firmware interfaces.FirmwareDetector,
	config interfaces.ConfigSnapshot,
	log zerolog.Logger,
) (*AutoLayoutPlanner, error) {
	if memory == nil {
		return nil, fmt.Errorf("memory info provider cannot be nil")
	}
	if firmware == nil {
		return nil, fmt.Errorf("firmware detector cannot be nil")
	}
	if config == nil {
		return nil, fmt.Errorf("config snapshot cannot be nil")
	}
	return &AutoLayoutPlanner{
		memory:   memory,
		firmware: firmware,
		config:   config,
		log:      log,
	}, nil
}

// Plan computes the full layout for the device under the given options.
// Insufficient space for swap is not an error: the plan silently degrades
// to no swap. Errors are reserved for contract violations such as an ESP
// size that resolves to zero sectors.
func (p *AutoLayoutPlanner) Plan(dev *types.Device, o types.AutoPartitionOptions) (*Plan, error) {
	isEfi := p.firmware.IsEFI()

	// EFI leaves 2 MiB of leading space before the ESP, BIOS starts at
	// the 1 MiB boundary (usually sector 2048). Sectors count from 0, so
	// a reserve of 2048 sectors makes sector 2048 the first free one.
	emptySpaceB := 1 * types.MiB
	if isEfi {
		emptySpaceB = 2 * types.MiB
	}
	firstFreeSector := types.BytesToSectors(emptySpaceB, dev.LogicalSize)

	table := types.ParseTableType(o.TableType)
	if table == types.TableTypeUnknown {
		if isEfi {
			table = types.TableTypeGPT
		} else {
			table = types.TableTypeMSDOS
		}
	}

	rootFS := types.ParseFilesystem(o.RootFilesystem)
	if rootFS == types.FilesystemUnknown {
		rootFS = types.FilesystemExt4
	}

	plan := &Plan{
		ID:       uuid.New(),
		Device:   dev,
		Table:    table,
		RootFS:   rootFS,
		RootRole: types.RolePrimary,
	}
	plan.Steps = append(plan.Steps, PlanStep{Kind: StepCreateTable, Table: table})

	if isEfi {
		espSizeB := uint64(defaultESPSize)
		if p.config.Contains(ConfigKeyESPSize) {
			size, err := types.ParsePartitionSize(p.config.Value(ConfigKeyESPSize))
			if err != nil {
				return nil, fmt.Errorf("resolving %s: %w", ConfigKeyESPSize, err)
			}
			espSizeB = size.ToBytes(dev.Capacity())
		}

		espSectors := types.BytesToSectors(espSizeB, dev.LogicalSize)
		if espSectors == 0 {
			return nil, fmt.Errorf("EFI system partition size %s is smaller than one sector", types.HumanSize(espSizeB))
		}

		// The ESP occupies espSectors sectors starting at firstFreeSector,
		// numbered firstFreeSector..firstFreeSector+espSectors-1.
		lastSector := firstFreeSector + espSectors - 1
		esp := types.PlannedPartition{
			Role:       types.RolePrimary,
			Sectors:    types.SectorRange{First: firstFreeSector, Last: lastSector},
			Filesystem: types.FilesystemFat32,
			Format:     true,
			MountPoint: o.EFIMountPoint,
			Flag:       types.FlagESP,
		}
		if p.config.Contains(ConfigKeyESPName) {
			esp.Label = p.config.Value(ConfigKeyESPName)
		}
		plan.Steps = append(plan.Steps, PlanStep{Kind: StepCreatePartition, Partition: esp})
		firstFreeSector = lastSector + 1
	}

	mayCreateSwap := o.Swap == types.SwapSmall || o.Swap == types.SwapFull
	shouldCreateSwap := false
	var suggestedSwapB uint64

	if mayCreateSwap {
		availableSpaceB := (dev.TotalLogical - firstFreeSector) * dev.LogicalSize

		ramB, overestimation, err := p.memory.TotalMemory()
		if err != nil {
			// Swap never blocks installation; plan without it.
			p.log.Warn().Err(err).Msg("cannot read memory size, skipping swap")
		} else {
			suggestedSwapB = SuggestSwapSize(availableSpaceB, o.Swap, ramB, overestimation)
			p.log.Debug().
				Str("suggested", types.HumanSize(suggestedSwapB)).
				Msg("suggested swap size")

			// Space required is what the installation claims it needs plus
			// the swap itself plus a fudge factor.
			requiredSpaceB := o.RequiredSpace + requiredSpaceFudge + suggestedSwapB
			shouldCreateSwap = availableSpaceB > requiredSpaceB
			if !shouldCreateSwap {
				p.log.Info().
					Str("available", types.HumanSize(availableSpaceB)).
					Str("required", types.HumanSize(requiredSpaceB)).
					Msg("not enough space for swap, planning without it")
			}
		}
	}

	lastSectorForRoot := dev.LastSector()
	if shouldCreateSwap {
		lastSectorForRoot -= types.BytesToSectors(suggestedSwapB, dev.LogicalSize) + 1
	}

	plan.Steps = append(plan.Steps, PlanStep{
		Kind: StepRootLayout,
		Root: RootLayoutRequest{First: firstFreeSector, Last: lastSectorForRoot, Passphrase: o.Passphrase},
	})

	if shouldCreateSwap {
		swap := types.PlannedPartition{
			Role:       types.RolePrimary,
			Sectors:    types.SectorRange{First: lastSectorForRoot + 1, Last: dev.LastSector()},
			Filesystem: types.FilesystemLinuxSwap,
			Format:     true,
			Label:      "swap",
			Passphrase: o.Passphrase,
		}
		if p.config.Contains(ConfigKeySwapName) {
			swap.Label = p.config.Value(ConfigKeySwapName)
		}
		plan.Steps = append(plan.Steps, PlanStep{Kind: StepCreatePartition, Partition: swap})
		plan.SwapSize = suggestedSwapB
	}

	p.log.Info().
		Stringer("plan", plan.ID).
		Str("device", dev.Path).
		Stringer("table", table).
		Bool("efi", isEfi).
		Bool("swap", shouldCreateSwap).
		Msg("computed autopartition plan")

	return plan, nil
}
