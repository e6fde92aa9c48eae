package types

import "strings"

// SwapChoice selects the swap strategy for an autopartition plan.
type SwapChoice int

const (
	// SwapNone creates no swap partition.
	SwapNone SwapChoice = iota
	// SwapSmall creates swap capped at 8 GiB and trimmed against free
	// space; hibernation is not guaranteed.
	SwapSmall
	// SwapFull sizes swap to hold the full RAM contents so that
	// suspend-to-disk always works.
	SwapFull
)

// ParseSwapChoice maps a configuration string to a swap choice.
// Unrecognized names mean no swap.
func ParseSwapChoice(name string) SwapChoice {
	switch strings.ToLower(name) {
	case "small", "smallswap":
		return SwapSmall
	case "full", "fullswap", "suspend":
		return SwapFull
	default:
		return SwapNone
	}
}

func (c SwapChoice) String() string {
	switch c {
	case SwapSmall:
		return "small"
	case SwapFull:
		return "full"
	default:
		return "none"
	}
}

// AutoPartitionOptions is the firmware-independent policy bundle for an
// erase-and-autopartition plan. Zero values select the built-in defaults.
type AutoPartitionOptions struct {
	// TableType names the partition table to create; empty or
	// unrecognized selects GPT on EFI and msdos on BIOS.
	TableType string
	// RootFilesystem names the filesystem for the root partition; empty
	// or unrecognized selects ext4.
	RootFilesystem string
	// Swap selects the swap strategy.
	Swap SwapChoice
	// RequiredSpace is the space the installation itself needs, in bytes.
	RequiredSpace uint64
	// Passphrase enables full-disk encryption when non-empty; root and
	// swap share it.
	Passphrase string
	// EFIMountPoint is where the ESP is mounted, e.g. "/boot/efi".
	EFIMountPoint string
}

// ReplaceOptions is the policy bundle for a replace-partition plan.
type ReplaceOptions struct {
	// Passphrase enables encryption of the replacement root when non-empty.
	Passphrase string
}
