package graph

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func chainModules(name string) (map[string]Module, *fakeModule, *fakeModule, *fakeModule) {
	ds := newDataLayer(name+"_ds", Both)
	tn := newTransform(name + "_tn")
	loss := newLoss(name + "_loss")
	return map[string]Module{ds.name: ds, tn.name: tn, loss.name: loss}, ds, tn, loss
}

func TestExportConfig(t *testing.T) {
	g, _ := buildChain(t, Training, "export")
	cfg := g.ExportConfig()

	assert.Equal(t, "export", cfg.Name)
	assert.Equal(t, "training", cfg.Mode)
	require.Len(t, cfg.Steps, 3)
	assert.Equal(t, "export_ds", cfg.Steps[0].Module)
	assert.Empty(t, cfg.Steps[0].Inputs)
	assert.Equal(t, map[string]TensorRef{"x": {Step: 0, Port: "x"}}, cfg.Steps[1].Inputs)
	assert.Equal(t, map[string]TensorRef{
		"predictions": {Step: 1, Port: "y_pred"},
		"target":      {Step: 0, Port: "y"},
	}, cfg.Steps[2].Inputs)

	// Default output tables are derivable, so they are not exported.
	assert.Empty(t, cfg.Outputs)
	require.NoError(t, cfg.Validate())
}

func TestExportConfigCarriesManualOutputs(t *testing.T) {
	g, tensors := buildChain(t, Training, "export_manual")
	require.NoError(t, g.Compose(func(b *Builder) error {
		return b.SetOutput("my_loss", tensors["loss"])
	}))

	cfg := g.ExportConfig()
	require.Len(t, cfg.Outputs, 1)
	assert.Equal(t, OutputConfig{Name: "my_loss", Tensor: TensorRef{Step: 2, Port: "loss"}}, cfg.Outputs[0])
}

func TestConfigYAMLRoundTrip(t *testing.T) {
	g, tensors := buildChain(t, Training, "roundtrip")
	require.NoError(t, g.Compose(func(b *Builder) error {
		return b.SetOutput("my_loss", tensors["loss"])
	}))

	var buf bytes.Buffer
	require.NoError(t, g.WriteConfig(&buf))

	cfg, err := ReadConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.ExportConfig(), cfg)

	// Rebuilding against the same module instances reproduces the topology.
	mods := make(map[string]Module)
	for _, m := range g.Modules() {
		mods[m.Name()] = m
	}
	rebuilt, err := FromConfig(cfg, mods)
	require.NoError(t, err)

	assert.Equal(t, g.Name(), rebuilt.Name())
	assert.Equal(t, g.Mode(), rebuilt.Mode())
	assert.Equal(t, g.Len(), rebuilt.Len())
	require.Len(t, rebuilt.Steps(), len(g.Steps()))
	for i, s := range rebuilt.Steps() {
		assert.Same(t, g.Steps()[i].Entity, s.Entity)
	}
	assert.Equal(t, []string{"my_loss"}, rebuilt.OutputNames())
	assert.True(t, rebuilt.ManuallyBound())
	assert.Equal(t, cfg, rebuilt.ExportConfig())
}

func TestFromConfigReplaysDefaults(t *testing.T) {
	mods, ds, tn, loss := chainModules("replay")
	cfg := &Config{
		Name: "replayed",
		Mode: "training",
		Steps: []StepConfig{
			{Module: ds.name},
			{Module: tn.name, Inputs: map[string]TensorRef{"x": {Step: 0, Port: "x"}}},
			{Module: loss.name, Inputs: map[string]TensorRef{
				"predictions": {Step: 1, Port: "y_pred"},
				"target":      {Step: 0, Port: "y"},
			}},
		},
	}

	g, err := FromConfig(cfg, mods)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "y_pred", "loss"}, g.OutputNames())
	assert.Equal(t, 3, g.Len())
}

func TestFromConfigAggregatesValidationErrors(t *testing.T) {
	mods, ds, tn, _ := chainModules("invalid")
	cfg := &Config{
		Name: "broken",
		Mode: "evaluation", // unknown mode
		Steps: []StepConfig{
			{Module: ds.name},
			{Module: "missing_module"},
			{Module: tn.name, Inputs: map[string]TensorRef{
				"x":     {Step: 5, Port: "x"},      // forward reference
				"bogus": {Step: 0, Port: "x"},      // unknown input port
				"y":     {Step: 0, Port: "absent"}, // unknown output port, port name also undeclared
			}},
		},
		Outputs: []OutputConfig{
			{Name: "out", Tensor: TensorRef{Step: 9, Port: "x"}},
		},
	}

	_, err := FromConfig(cfg, mods)
	require.Error(t, err)
	errs := multierr.Errors(err)
	assert.GreaterOrEqual(t, len(errs), 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFromConfigSurfacesModeIncompatibility(t *testing.T) {
	dl := newDataLayer("cfg_dl", Inference)
	cfg := &Config{
		Name:  "modefail",
		Mode:  "training",
		Steps: []StepConfig{{Module: dl.name}},
	}

	_, err := FromConfig(cfg, map[string]Module{dl.name: dl})
	assert.ErrorIs(t, err, ErrIncompatibleModes)
}

func TestReadConfigRejectsMalformedYAML(t *testing.T) {
	_, err := ReadConfig(bytes.NewBufferString("steps: [:"))
	assert.Error(t, err)
}
