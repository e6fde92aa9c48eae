package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestNewSnapshot_CapturesRecognizedKeys(t *testing.T) {
	v := viper.New()
	v.Set("efiSystemPartitionSize", "512MiB")
	v.Set("swapPartitionName", "swap0")
	v.Set("unrelatedKey", "ignored")

	s := NewSnapshot(v)

	assert.True(t, s.Contains("efiSystemPartitionSize"))
	assert.Equal(t, "512MiB", s.Value("efiSystemPartitionSize"))
	assert.True(t, s.Contains("swapPartitionName"))
	assert.Equal(t, "swap0", s.Value("swapPartitionName"))
	assert.False(t, s.Contains("efiSystemPartitionName"))
	assert.False(t, s.Contains("unrelatedKey"))
	assert.Empty(t, s.Value("efiSystemPartitionName"))
}

func TestSnapshot_IsDetachedFromViper(t *testing.T) {
	v := viper.New()
	v.Set("swapPartitionName", "before")
	s := NewSnapshot(v)

	// Later changes to the live configuration do not leak into plans
	// computed against the snapshot.
	v.Set("swapPartitionName", "after")
	assert.Equal(t, "before", s.Value("swapPartitionName"))
}

func TestEmptySnapshot(t *testing.T) {
	s := EmptySnapshot()
	assert.False(t, s.Contains("efiSystemPartitionSize"))
	assert.Empty(t, s.Value("efiSystemPartitionSize"))
}

func TestSnapshotFromMap(t *testing.T) {
	s := SnapshotFromMap(map[string]string{"efiSystemPartitionName": "EFI"})
	assert.True(t, s.Contains("efiSystemPartitionName"))
	assert.Equal(t, "EFI", s.Value("efiSystemPartitionName"))
}
