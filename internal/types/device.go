package types

import "fmt"

// Device describes the storage device a plan is computed against. It is an
// immutable snapshot: the planner never mutates it and holds no reference
// to it after the planning call returns.
type Device struct {
	// Path is the system path of the device, informational only.
	Path string
	// LogicalSize is the logical sector size in bytes (usually 512).
	LogicalSize uint64
	// TotalLogical is the total number of logical sectors on the device.
	TotalLogical uint64
}

// NewDevice validates the geometry and returns a device snapshot.
func NewDevice(path string, logicalSize, totalLogical uint64) (*Device, error) {
	if logicalSize == 0 {
		return nil, fmt.Errorf("device %s: logical sector size cannot be zero", path)
	}
	if totalLogical == 0 {
		return nil, fmt.Errorf("device %s: sector count cannot be zero", path)
	}
	return &Device{Path: path, LogicalSize: logicalSize, TotalLogical: totalLogical}, nil
}

// Capacity returns the total device size in bytes.
func (d *Device) Capacity() uint64 {
	return d.TotalLogical * d.LogicalSize
}

// LastSector returns the last addressable logical sector.
func (d *Device) LastSector() uint64 {
	return d.TotalLogical - 1
}

func (d *Device) String() string {
	return fmt.Sprintf("%s (%s, %d-byte sectors)", d.Path, HumanSize(d.Capacity()), d.LogicalSize)
}
