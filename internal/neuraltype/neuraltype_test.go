package neuraltype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_CopiesAxes(t *testing.T) {
	axes := []Axis{{Kind: AxisBatch}, {Kind: AxisDimension, Size: 4}}
	typ := New(Channel, axes...)

	// Mutating the source slice must not leak into the descriptor.
	axes[0].Kind = AxisWidth
	assert.Equal(t, AxisBatch, typ.Axes()[0].Kind)

	// And mutating the returned copy must not either.
	got := typ.Axes()
	got[1].Size = 99
	assert.Equal(t, 4, typ.Axes()[1].Size)
}

func TestNew_Axisless(t *testing.T) {
	typ := New(Loss)
	assert.Nil(t, typ.Axes())
	assert.Equal(t, 0, typ.Rank())
	assert.Equal(t, Loss, typ.Element())
}

func TestType_String(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		want string
	}{
		{
			name: "axed type",
			typ:  New(Channel, Axis{Kind: AxisBatch}, Axis{Kind: AxisDimension}),
			want: "axes=[batch,dimension] elements=channel",
		},
		{
			name: "fixed size",
			typ:  New(Labels, Axis{Kind: AxisBatch, Size: 32}),
			want: "axes=[batch(32)] elements=labels",
		},
		{
			name: "axisless",
			typ:  New(Loss),
			want: "elements=loss",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}
}

func TestAxisKind_String(t *testing.T) {
	kinds := []AxisKind{AxisAny, AxisBatch, AxisTime, AxisDimension, AxisChannel, AxisHeight, AxisWidth}
	for _, k := range kinds {
		assert.NotEqual(t, "unknown", k.String())
		assert.NotEmpty(t, k.String())
	}
	assert.Equal(t, "unknown", AxisKind(99).String())
}

func TestElementKind_String(t *testing.T) {
	kinds := []ElementKind{Void, Element, Channel, Labels, Prediction, Loss, TokenIndex, Length}
	for _, k := range kinds {
		assert.NotEqual(t, "unknown", k.String())
		assert.NotEmpty(t, k.String())
	}
	assert.Equal(t, "unknown", ElementKind(99).String())
}
