package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPanelSync_Evaluate(t *testing.T) {
	tests := []struct {
		name    string
		mounted bool
		manual  bool
		steps   []bool
		want    []bool
	}{
		{
			name:   "manual pulls once per activation",
			manual: true,
			steps:  []bool{true, true, false, true},
			want:   []bool{true, false, false, true},
		},
		{
			name:   "automatic never pulls",
			manual: false,
			steps:  []bool{true, false, true},
			want:   []bool{false, false, false},
		},
		{
			name:    "active at mount does not pull",
			mounted: true,
			manual:  true,
			steps:   []bool{true, true},
			want:    []bool{false, false},
		},
		{
			name:   "deactivation never pulls",
			manual: true,
			steps:  []bool{false, false},
			want:   []bool{false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sync := NewPanelSync(tt.mounted)
			for i, active := range tt.steps {
				assert.Equal(t, tt.want[i], sync.Evaluate(active, tt.manual), "step %d", i)
			}
		})
	}
}
