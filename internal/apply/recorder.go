// Package apply provides a LayoutApplier that records the requests a plan
// makes instead of mutating a device. It backs the CLI dry-run output and
// the planner tests; the real partition-table mutation lives outside this
// module.
package apply

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dr460nf1r3/calamares/internal/types"
)

// RequestKind tags a recorded applier request.
type RequestKind int

const (
	RequestCreateTable RequestKind = iota
	RequestCreatePartition
	RequestDeletePartition
	RequestRootLayout
)

// Request is one recorded applier call.
type Request struct {
	Kind       RequestKind
	Device     string
	Table      types.TableType
	Partition  types.PlannedPartition
	Sectors    types.SectorRange
	First      uint64
	Last       uint64
	Passphrase string
}

// Recorder satisfies interfaces.LayoutApplier by logging and remembering
// every request in order.
type Recorder struct {
	log      zerolog.Logger
	requests []Request
}

// NewRecorder returns a recorder logging through the given logger.
func NewRecorder(log zerolog.Logger) *Recorder {
	return &Recorder{log: log}
}

// Requests returns the recorded requests in arrival order.
func (r *Recorder) Requests() []Request {
	return r.requests
}

// CreatePartitionTable records a table creation request.
func (r *Recorder) CreatePartitionTable(dev *types.Device, table types.TableType) error {
	r.log.Info().Str("device", dev.Path).Stringer("table", table).Msg("create partition table")
	r.requests = append(r.requests, Request{Kind: RequestCreateTable, Device: dev.Path, Table: table})
	return nil
}

// CreatePartition records a partition creation request after validating
// that the range fits the device.
func (r *Recorder) CreatePartition(dev *types.Device, part types.PlannedPartition) error {
	if err := part.Sectors.Validate(); err != nil {
		return err
	}
	if part.Sectors.Last > dev.LastSector() {
		return fmt.Errorf("partition %s exceeds device end %d", part.Sectors, dev.LastSector())
	}
	r.log.Info().
		Str("device", dev.Path).
		Stringer("sectors", part.Sectors).
		Stringer("filesystem", part.Filesystem).
		Str("size", types.HumanSize(part.Sectors.SizeBytes(dev.LogicalSize))).
		Bool("encrypted", part.Passphrase != "").
		Msg("create partition")
	r.requests = append(r.requests, Request{Kind: RequestCreatePartition, Device: dev.Path, Partition: part})
	return nil
}

// DeletePartition records a deletion request.
func (r *Recorder) DeletePartition(dev *types.Device, sectors types.SectorRange) error {
	r.log.Info().Str("device", dev.Path).Stringer("sectors", sectors).Msg("delete partition")
	r.requests = append(r.requests, Request{Kind: RequestDeletePartition, Device: dev.Path, Sectors: sectors})
	return nil
}

// ApplyRootLayout records a root layout request.
func (r *Recorder) ApplyRootLayout(dev *types.Device, first, last uint64, passphrase string) error {
	if first > last {
		return fmt.Errorf("invalid root range: first %d after last %d", first, last)
	}
	r.log.Info().
		Str("device", dev.Path).
		Uint64("first", first).
		Uint64("last", last).
		Bool("encrypted", passphrase != "").
		Msg("apply root layout")
	r.requests = append(r.requests, Request{
		Kind: RequestRootLayout, Device: dev.Path, First: first, Last: last, Passphrase: passphrase,
	})
	return nil
}
