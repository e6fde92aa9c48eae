// Package config loads the installer configuration and exposes it to the
// planners as an immutable snapshot, so that planning stays a pure function
// of its arguments rather than of ambient global state.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Keys the planners recognize. Anything else in the configuration file is
// ignored here.
var recognizedKeys = []string{
	"efiSystemPartitionSize",
	"efiSystemPartitionName",
	"swapPartitionName",
	"overestimationFactor",
}

// Snapshot is a fixed set of configuration values captured at load time.
// It satisfies interfaces.ConfigSnapshot.
type Snapshot struct {
	values map[string]string
}

// NewSnapshot captures the recognized keys from a viper instance.
func NewSnapshot(v *viper.Viper) *Snapshot {
	s := &Snapshot{values: make(map[string]string)}
	for _, key := range recognizedKeys {
		if v.IsSet(key) {
			s.values[key] = v.GetString(key)
		}
	}
	return s
}

// EmptySnapshot returns a snapshot with no keys set; every lookup falls
// back to the built-in defaults.
func EmptySnapshot() *Snapshot {
	return &Snapshot{values: make(map[string]string)}
}

// SnapshotFromMap builds a snapshot from literal values, mainly for tests
// and CLI overrides.
func SnapshotFromMap(values map[string]string) *Snapshot {
	s := &Snapshot{values: make(map[string]string, len(values))}
	for k, v := range values {
		s.values[k] = v
	}
	return s
}

// Contains reports whether the key was set when the snapshot was taken.
func (s *Snapshot) Contains(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Value returns the captured value for the key, or "" when unset.
func (s *Snapshot) Value(key string) string {
	return s.values[key]
}

// Load reads the installer configuration file (partition.yaml, searched in
// the working directory, ./config and /etc/calamares) and captures a
// snapshot of it. A missing file is not an error: the snapshot is empty
// and built-in defaults apply.
func Load() (*Snapshot, error) {
	v := viper.New()
	v.SetConfigName("partition")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/calamares")
	v.SetEnvPrefix("CALAMARES")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading configuration: %w", err)
		}
	}
	return NewSnapshot(v), nil
}
