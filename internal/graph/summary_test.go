package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	g, _ := buildChain(t, Training, "summary")
	s := g.Summary()

	assert.Contains(t, s, `graph "summary" (mode=training, modules=3, steps=3)`)
	assert.Contains(t, s, "0: summary_ds")
	assert.Contains(t, s, "1: summary_tn(x=summary_ds.0.x)")
	assert.Contains(t, s, "2: summary_loss(predictions=summary_tn.1.y_pred, target=summary_ds.0.y)")
	assert.Contains(t, s, "outputs (default):")
	assert.Contains(t, s, "loss <- summary_loss.2.loss")
}

func TestSummaryMarksManualOutputsAndInputs(t *testing.T) {
	tn := newTransform("summary2_tn")
	g := New(Training, WithName("summary2"))
	require.NoError(t, g.Compose(func(b *Builder) error {
		out, err := b.Invoke(tn, nil)
		if err != nil {
			return err
		}
		return b.SetOutput("prediction", out[0])
	}))

	s := g.Summary()
	assert.Contains(t, s, "inputs:")
	assert.Contains(t, s, "x [")
	assert.Contains(t, s, "outputs (manual):")
	assert.Contains(t, s, "prediction <- summary2_tn.0.y_pred")
}

func TestDefaultNameCountersPerKind(t *testing.T) {
	a := DefaultName("testkind")
	b := DefaultName("testkind")
	assert.Equal(t, "testkind0", a)
	assert.Equal(t, "testkind1", b)
	assert.Equal(t, "otherkind0", DefaultName("otherkind"))
}
