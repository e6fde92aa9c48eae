package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dr460nf1r3/calamares/internal/apply"
	"github.com/dr460nf1r3/calamares/internal/services"
	"github.com/dr460nf1r3/calamares/internal/types"
)

// replace command flags
var (
	replaceFirst      uint64
	replaceLast       uint64
	replaceRoles      []string
	parentExtended    bool
	replacePartPath   string
	replacePassphrase string
)

var replaceCmd = &cobra.Command{
	Use:   "replace",
	Short: "Compute a replace-partition layout",
	Long: `replace infers the role (primary or logical) a replacement partition
must take and reuses the existing sector range for the new root.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		dev, err := deviceFromFlags()
		if err != nil {
			return err
		}

		roles, err := parseRoles(replaceRoles)
		if err != nil {
			return err
		}

		existing := &types.ExistingPartition{
			Path:    replacePartPath,
			Roles:   roles,
			Sectors: types.SectorRange{First: replaceFirst, Last: replaceLast},
		}
		if parentExtended {
			existing.Parent = &types.ExistingPartition{Roles: types.RoleExtended}
		}
		if err := existing.Sectors.Validate(); err != nil {
			return err
		}

		planner := services.NewReplacementPlanner(log)
		plan, err := planner.Plan(dev, existing, types.ReplaceOptions{Passphrase: replacePassphrase})
		if err != nil {
			return err
		}

		recorder := apply.NewRecorder(log)
		if err := plan.Apply(recorder); err != nil {
			return err
		}
		if !quiet {
			fmt.Printf("Replacement role: %s, sectors %s\n", plan.RootRole, existing.Sectors)
		}
		printPlan(plan, dev)
		return nil
	},
}

func init() {
	replaceCmd.Flags().StringVar(&devicePath, "device", "/dev/sda", "device path (informational)")
	replaceCmd.Flags().StringVar(&capacity, "capacity", "", "device capacity, e.g. 20GiB (required)")
	replaceCmd.Flags().Uint64Var(&sectorSize, "sector-size", 512, "logical sector size in bytes")
	replaceCmd.Flags().Uint64Var(&replaceFirst, "first", 0, "first sector of the partition being replaced")
	replaceCmd.Flags().Uint64Var(&replaceLast, "last", 0, "last sector of the partition being replaced")
	replaceCmd.Flags().StringSliceVar(&replaceRoles, "roles", []string{"primary"},
		"roles of the existing entry (primary, logical, extended, unallocated)")
	replaceCmd.Flags().BoolVar(&parentExtended, "parent-extended", false,
		"the entry sits inside an extended container")
	replaceCmd.Flags().StringVar(&replacePartPath, "partition", "", "partition path (informational)")
	replaceCmd.Flags().StringVar(&replacePassphrase, "passphrase", "", "encrypt the replacement root")
	_ = replaceCmd.MarkFlagRequired("capacity")
	_ = replaceCmd.MarkFlagRequired("last")
}

func parseRoles(names []string) (types.PartitionRole, error) {
	var roles types.PartitionRole
	for _, name := range names {
		switch name {
		case "primary":
			roles |= types.RolePrimary
		case "logical":
			roles |= types.RoleLogical
		case "extended":
			roles |= types.RoleExtended
		case "unallocated":
			roles |= types.RoleUnallocated
		default:
			return 0, fmt.Errorf("unknown partition role %q", name)
		}
	}
	return roles, nil
}
