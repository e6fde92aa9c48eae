package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dr460nf1r3/calamares/internal/config"
)

func TestNewGopsutilMemory_FactorFromConfig(t *testing.T) {
	tests := []struct {
		name     string
		cfg      map[string]string
		expected float64
		wantErr  bool
	}{
		{name: "default when unset", cfg: nil, expected: 1.01},
		{name: "configured factor", cfg: map[string]string{"overestimationFactor": "1.1"}, expected: 1.1},
		{name: "below one rejected", cfg: map[string]string{"overestimationFactor": "0.5"}, wantErr: true},
		{name: "malformed rejected", cfg: map[string]string{"overestimationFactor": "fast"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewGopsutilMemory(config.SnapshotFromMap(tt.cfg))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m.overestimation)
		})
	}
}

func TestFixedMemory(t *testing.T) {
	ram, factor, err := FixedMemory{RAMBytes: 1024, Overestimation: 1.5}.TotalMemory()
	require.NoError(t, err)
	assert.Equal(t, uint64(1024), ram)
	assert.Equal(t, 1.5, factor)
}
