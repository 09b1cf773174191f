package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNestingAllowed(t *testing.T) {
	tests := []struct {
		outer OperationMode
		inner OperationMode
		want  bool
	}{
		{Training, Training, true},
		{Training, Both, true},
		{Training, Inference, false},
		{Inference, Inference, true},
		{Inference, Both, true},
		{Inference, Training, false},
		{Both, Both, true},
		{Both, Training, false},
		{Both, Inference, false},
	}
	for _, tt := range tests {
		t.Run(tt.inner.String()+" into "+tt.outer.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, NestingAllowed(tt.outer, tt.inner))
		})
	}
}

func TestOperationModeRoundTrip(t *testing.T) {
	for _, mode := range []OperationMode{Both, Training, Inference} {
		parsed, err := ParseOperationMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}

	_, err := ParseOperationMode("evaluation")
	assert.Error(t, err)
}

func TestOperationModeZeroValueIsBoth(t *testing.T) {
	var mode OperationMode
	assert.Equal(t, Both, mode)
	assert.Equal(t, "both", mode.String())
}
