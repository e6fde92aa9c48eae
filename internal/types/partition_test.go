package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTableType(t *testing.T) {
	tests := []struct {
		input    string
		expected TableType
	}{
		{input: "gpt", expected: TableTypeGPT},
		{input: "GPT", expected: TableTypeGPT},
		{input: "msdos", expected: TableTypeMSDOS},
		{input: "mbr", expected: TableTypeMSDOS},
		{input: "dos", expected: TableTypeMSDOS},
		{input: "", expected: TableTypeUnknown},
		{input: "apm", expected: TableTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseTableType(tt.input))
		})
	}
}

func TestParseFilesystem(t *testing.T) {
	tests := []struct {
		input    string
		expected FilesystemType
	}{
		{input: "ext4", expected: FilesystemExt4},
		{input: "Btrfs", expected: FilesystemBtrfs},
		{input: "xfs", expected: FilesystemXfs},
		{input: "vfat", expected: FilesystemFat32},
		{input: "fat32", expected: FilesystemFat32},
		{input: "linuxswap", expected: FilesystemLinuxSwap},
		{input: "", expected: FilesystemUnknown},
		{input: "zfs", expected: FilesystemUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseFilesystem(tt.input))
		})
	}
}

func TestPartitionRole_Has(t *testing.T) {
	roles := RolePrimary | RoleUnallocated
	assert.True(t, roles.Has(RolePrimary))
	assert.True(t, roles.Has(RoleUnallocated))
	assert.False(t, roles.Has(RoleExtended))
	assert.False(t, roles.Has(RoleLogical))
}

func TestPartitionRole_String(t *testing.T) {
	assert.Equal(t, "primary", RolePrimary.String())
	assert.Equal(t, "logical|extended", (RoleLogical | RoleExtended).String())
	assert.Equal(t, "none", PartitionRole(0).String())
}

func TestExistingPartition_IsFreeSpace(t *testing.T) {
	free := &ExistingPartition{Roles: RoleUnallocated}
	assert.True(t, free.IsFreeSpace())

	part := &ExistingPartition{Roles: RolePrimary}
	assert.False(t, part.IsFreeSpace())
}
