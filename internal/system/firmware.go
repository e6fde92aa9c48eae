package system

import "os"

// efiVarsPath exists only when the kernel booted through UEFI.
const efiVarsPath = "/sys/firmware/efi"

// SysfsFirmware detects the boot firmware from sysfs. It satisfies
// interfaces.FirmwareDetector.
type SysfsFirmware struct{}

// IsEFI reports whether the running system booted through UEFI.
func (SysfsFirmware) IsEFI() bool {
	info, err := os.Stat(efiVarsPath)
	return err == nil && info.IsDir()
}

// FixedFirmware reports a constant firmware mode, for tests and for
// planning a device on behalf of another machine.
type FixedFirmware struct {
	EFI bool
}

// IsEFI returns the configured mode.
func (f FixedFirmware) IsEFI() bool {
	return f.EFI
}
