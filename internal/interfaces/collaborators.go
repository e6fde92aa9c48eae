// File: internal/interfaces/collaborators.go
package interfaces

// MemoryInfoProvider reports the machine's RAM for swap sizing
type MemoryInfoProvider interface {
	// TotalMemory returns the total RAM in bytes together with an
	// overestimation factor (>= 1.0) correcting for the firmware
	// reporting less memory than is physically installed
	TotalMemory() (ramBytes uint64, overestimationFactor float64, err error)
}

// FirmwareDetector reports the boot firmware of the running system
type FirmwareDetector interface {
	// IsEFI returns true on UEFI firmware, false on legacy BIOS
	IsEFI() bool
}

// ConfigSnapshot is a read-only view of the installer configuration taken
// once per planning call. Recognized keys: efiSystemPartitionSize,
// efiSystemPartitionName, swapPartitionName. A missing key means the
// built-in default applies.
type ConfigSnapshot interface {
	// Contains reports whether the key is set
	Contains(key string) bool

	// Value returns the string value for the key, or "" when unset
	Value(key string) string
}
