package types

import "strings"

// TableType identifies the partition table format on a device.
type TableType int

const (
	TableTypeUnknown TableType = iota
	TableTypeGPT
	TableTypeMSDOS
)

// ParseTableType maps a configuration string to a table type. Unrecognized
// names fall through to TableTypeUnknown so the planner can substitute the
// firmware-appropriate default.
func ParseTableType(name string) TableType {
	switch strings.ToLower(name) {
	case "gpt":
		return TableTypeGPT
	case "msdos", "mbr", "dos":
		return TableTypeMSDOS
	default:
		return TableTypeUnknown
	}
}

func (t TableType) String() string {
	switch t {
	case TableTypeGPT:
		return "gpt"
	case TableTypeMSDOS:
		return "msdos"
	default:
		return "unknown"
	}
}

// FilesystemType identifies the filesystem a planned partition is formatted with.
type FilesystemType int

const (
	FilesystemUnknown FilesystemType = iota
	FilesystemExt4
	FilesystemBtrfs
	FilesystemXfs
	FilesystemFat32
	FilesystemLinuxSwap
)

// ParseFilesystem maps a configuration string to a filesystem type.
// Unrecognized names fall through to FilesystemUnknown.
func ParseFilesystem(name string) FilesystemType {
	switch strings.ToLower(name) {
	case "ext4":
		return FilesystemExt4
	case "btrfs":
		return FilesystemBtrfs
	case "xfs":
		return FilesystemXfs
	case "fat32", "vfat":
		return FilesystemFat32
	case "linuxswap", "swap":
		return FilesystemLinuxSwap
	default:
		return FilesystemUnknown
	}
}

func (f FilesystemType) String() string {
	switch f {
	case FilesystemExt4:
		return "ext4"
	case FilesystemBtrfs:
		return "btrfs"
	case FilesystemXfs:
		return "xfs"
	case FilesystemFat32:
		return "fat32"
	case FilesystemLinuxSwap:
		return "linuxswap"
	default:
		return "unknown"
	}
}

// PartitionRole is a set of roles a partition occupies in its table.
// MBR tables nest Logical partitions inside an Extended container;
// Unallocated marks a free-space region rather than a committed partition.
type PartitionRole uint8

const (
	RolePrimary PartitionRole = 1 << iota
	RoleLogical
	RoleExtended
	RoleUnallocated
)

// Has reports whether the set includes the given role.
func (r PartitionRole) Has(role PartitionRole) bool {
	return r&role != 0
}

func (r PartitionRole) String() string {
	var names []string
	if r.Has(RolePrimary) {
		names = append(names, "primary")
	}
	if r.Has(RoleLogical) {
		names = append(names, "logical")
	}
	if r.Has(RoleExtended) {
		names = append(names, "extended")
	}
	if r.Has(RoleUnallocated) {
		names = append(names, "unallocated")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// PartitionFlag is a partition-table flag attached to a planned partition.
type PartitionFlag int

const (
	FlagNone PartitionFlag = iota
	// FlagESP marks the partition as an EFI System Partition in the table.
	FlagESP
)

// PlannedPartition is one partition the planner has decided to create.
// Format is always true for partitions planned here; an empty Passphrase
// means the partition is created plain, otherwise it is wrapped in an
// encrypted container by the applier.
type PlannedPartition struct {
	Role       PartitionRole
	Sectors    SectorRange
	Filesystem FilesystemType
	Format     bool
	Label      string
	MountPoint string
	Passphrase string
	Flag       PartitionFlag
}

// ExistingPartition describes a partition (or unallocated region) already
// present on a device, as handed to the replacement planner. Parent is set
// when the entry is nested inside an extended container.
type ExistingPartition struct {
	Path    string
	Roles   PartitionRole
	Sectors SectorRange
	Parent  *ExistingPartition
}

// IsFreeSpace reports whether the descriptor is an unallocated region
// rather than a committed partition.
func (p *ExistingPartition) IsFreeSpace() bool {
	return p.Roles.Has(RoleUnallocated)
}
