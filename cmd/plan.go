package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/dr460nf1r3/calamares/internal/apply"
	"github.com/dr460nf1r3/calamares/internal/config"
	"github.com/dr460nf1r3/calamares/internal/interfaces"
	"github.com/dr460nf1r3/calamares/internal/services"
	"github.com/dr460nf1r3/calamares/internal/system"
	"github.com/dr460nf1r3/calamares/internal/types"
)

// Device description flags shared by plan and replace
var (
	devicePath string
	capacity   string
	sectorSize uint64
)

// plan command flags
var (
	firmwareMode  string
	swapChoice    string
	requiredSpace string
	tableType     string
	rootFS        string
	passphrase    string
	espMountPoint string
	ramOverride   string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute an erase-and-autopartition layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		dev, err := deviceFromFlags()
		if err != nil {
			return err
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		memory, err := memoryFromFlags(cfg)
		if err != nil {
			return err
		}

		firmware, err := firmwareFromFlags()
		if err != nil {
			return err
		}

		required, err := humanize.ParseBytes(requiredSpace)
		if err != nil {
			return fmt.Errorf("invalid required space %q: %w", requiredSpace, err)
		}

		planner, err := services.NewAutoLayoutPlanner(memory, firmware, cfg, log)
		if err != nil {
			return err
		}

		plan, err := planner.Plan(dev, types.AutoPartitionOptions{
			TableType:      tableType,
			RootFilesystem: rootFS,
			Swap:           types.ParseSwapChoice(swapChoice),
			RequiredSpace:  required,
			Passphrase:     passphrase,
			EFIMountPoint:  espMountPoint,
		})
		if err != nil {
			return err
		}

		recorder := apply.NewRecorder(log)
		if err := plan.Apply(recorder); err != nil {
			return err
		}
		printPlan(plan, dev)
		return nil
	},
}

func init() {
	planCmd.Flags().StringVar(&devicePath, "device", "/dev/sda", "device path (informational)")
	planCmd.Flags().StringVar(&capacity, "capacity", "", "device capacity, e.g. 20GiB (required)")
	planCmd.Flags().Uint64Var(&sectorSize, "sector-size", 512, "logical sector size in bytes")
	planCmd.Flags().StringVar(&firmwareMode, "firmware", "auto", "firmware mode (auto, efi, bios)")
	planCmd.Flags().StringVar(&swapChoice, "swap", "none", "swap strategy (none, small, full)")
	planCmd.Flags().StringVar(&requiredSpace, "required-space", "8GiB", "space the installation needs")
	planCmd.Flags().StringVar(&tableType, "table", "", "partition table type (gpt, msdos); default by firmware")
	planCmd.Flags().StringVar(&rootFS, "fs", "", "root filesystem (ext4, btrfs, xfs); default ext4")
	planCmd.Flags().StringVar(&passphrase, "passphrase", "", "enable full-disk encryption with this passphrase")
	planCmd.Flags().StringVar(&espMountPoint, "esp-mount", "/boot/efi", "mount point for the EFI system partition")
	planCmd.Flags().StringVar(&ramOverride, "ram", "", "assume this RAM size instead of probing the host")
	_ = planCmd.MarkFlagRequired("capacity")
}

// deviceFromFlags builds the device snapshot from --device/--capacity/--sector-size.
func deviceFromFlags() (*types.Device, error) {
	capacityB, err := humanize.ParseBytes(capacity)
	if err != nil {
		return nil, fmt.Errorf("invalid capacity %q: %w", capacity, err)
	}
	if sectorSize == 0 {
		return nil, fmt.Errorf("sector size cannot be zero")
	}
	return types.NewDevice(devicePath, sectorSize, capacityB/sectorSize)
}

// memoryFromFlags returns the host prober, or a fixed provider when --ram
// was given.
func memoryFromFlags(cfg interfaces.ConfigSnapshot) (interfaces.MemoryInfoProvider, error) {
	if ramOverride == "" {
		return system.NewGopsutilMemory(cfg)
	}
	ram, err := humanize.ParseBytes(ramOverride)
	if err != nil {
		return nil, fmt.Errorf("invalid ram size %q: %w", ramOverride, err)
	}
	return system.FixedMemory{RAMBytes: ram, Overestimation: 1.0}, nil
}

// firmwareFromFlags returns the sysfs detector, or a fixed detector when
// --firmware forces a mode.
func firmwareFromFlags() (interfaces.FirmwareDetector, error) {
	switch firmwareMode {
	case "auto":
		return system.SysfsFirmware{}, nil
	case "efi":
		return system.FixedFirmware{EFI: true}, nil
	case "bios":
		return system.FixedFirmware{EFI: false}, nil
	default:
		return nil, fmt.Errorf("unknown firmware mode %q", firmwareMode)
	}
}

// printPlan writes the plan as a table to stdout.
func printPlan(plan *services.Plan, dev *types.Device) {
	if quiet {
		return
	}
	fmt.Printf("Plan %s for %s\n", plan.ID, dev)
	fmt.Printf("Table: %s  Root filesystem: %s\n", plan.Table, plan.RootFS)
	for _, w := range plan.Warnings {
		fmt.Printf("Warning: %s\n", w)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STEP\tSECTORS\tSIZE\tDETAILS")
	for _, s := range plan.Steps {
		switch s.Kind {
		case services.StepCreateTable:
			fmt.Fprintf(tw, "%s\t-\t-\t%s\n", s.Kind, s.Table)
		case services.StepCreatePartition:
			details := s.Partition.Filesystem.String()
			if s.Partition.Label != "" {
				details += " label=" + s.Partition.Label
			}
			if s.Partition.Passphrase != "" {
				details += " encrypted"
			}
			if s.Partition.Flag == types.FlagESP {
				details += " esp"
			}
			fmt.Fprintf(tw, "%s\t%d..%d\t%s\t%s\n",
				s.Kind, s.Partition.Sectors.First, s.Partition.Sectors.Last,
				types.HumanSize(s.Partition.Sectors.SizeBytes(dev.LogicalSize)), details)
		case services.StepDeletePartition:
			fmt.Fprintf(tw, "%s\t%d..%d\t%s\t\n",
				s.Kind, s.Delete.First, s.Delete.Last,
				types.HumanSize(s.Delete.SizeBytes(dev.LogicalSize)))
		case services.StepRootLayout:
			details := plan.RootFS.String()
			if s.Root.Passphrase != "" {
				details += " encrypted"
			}
			size := (s.Root.Last - s.Root.First + 1) * dev.LogicalSize
			fmt.Fprintf(tw, "%s\t%d..%d\t%s\t%s\n",
				s.Kind, s.Root.First, s.Root.Last, types.HumanSize(size), details)
		}
	}
	tw.Flush()
}
