package graph

import (
	"fmt"
	"io"
	"sort"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// TensorRef names a tensor inside a config by its producing step index and
// output port.
type TensorRef struct {
	Step int    `yaml:"step"`
	Port string `yaml:"port"`
}

// StepConfig is one recorded invocation: the module name plus a tensor
// reference per bound input port. Ports absent from Inputs were graph inputs
// at export time and become graph inputs again on import.
type StepConfig struct {
	Module string               `yaml:"module"`
	Inputs map[string]TensorRef `yaml:"inputs,omitempty"`
}

// OutputConfig is one manually bound output entry.
type OutputConfig struct {
	Name   string    `yaml:"name"`
	Tensor TensorRef `yaml:"tensor"`
}

// Config is the serializable topology of a graph: name, mode and step
// sequence, plus the output table when it was manually bound (a default
// table is derivable and therefore not exported). Configs carry no weights
// or numeric state.
type Config struct {
	Name    string         `yaml:"name"`
	Mode    string         `yaml:"mode"`
	Steps   []StepConfig   `yaml:"steps"`
	Outputs []OutputConfig `yaml:"outputs,omitempty"`
}

// Validate checks the config's internal consistency: a parseable mode,
// named modules, and tensor references pointing at earlier steps. All
// problems are reported at once.
func (c *Config) Validate() error {
	var err error
	if _, perr := ParseOperationMode(c.Mode); perr != nil {
		err = multierr.Append(err, perr)
	}
	for i, sc := range c.Steps {
		if sc.Module == "" {
			err = multierr.Append(err, fmt.Errorf("graph: step %d: missing module name", i))
		}
		for _, port := range sortedPorts(sc.Inputs) {
			ref := sc.Inputs[port]
			if ref.Step < 0 || ref.Step >= i {
				err = multierr.Append(err,
					fmt.Errorf("graph: step %d input %q refers to step %d, want an earlier step", i, port, ref.Step))
			}
		}
	}
	for _, oc := range c.Outputs {
		if oc.Tensor.Step < 0 || oc.Tensor.Step >= len(c.Steps) {
			err = multierr.Append(err,
				fmt.Errorf("graph: output %q refers to step %d of %d", oc.Name, oc.Tensor.Step, len(c.Steps)))
		}
	}
	return err
}

// ExportConfig captures the graph's topology as a config.
func (g *Graph) ExportConfig() *Config {
	cfg := &Config{Name: g.name, Mode: g.mode.String()}
	for _, s := range g.steps {
		sc := StepConfig{Module: s.Entity.Name()}
		if len(s.Inputs) > 0 {
			sc.Inputs = make(map[string]TensorRef, len(s.Inputs))
			for port, t := range s.Inputs {
				ref := g.index[t.ID()]
				sc.Inputs[port] = TensorRef{Step: ref.Step, Port: ref.Port}
			}
		}
		cfg.Steps = append(cfg.Steps, sc)
	}
	if g.manual {
		for _, e := range g.outputs {
			ref := g.index[e.tensor.ID()]
			cfg.Outputs = append(cfg.Outputs, OutputConfig{Name: e.name, Tensor: ref.tensorRef()})
		}
	}
	return cfg
}

// WriteConfig exports the graph's topology as YAML.
func (g *Graph) WriteConfig(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(g.ExportConfig()); err != nil {
		return fmt.Errorf("graph: encoding config for %q: %w", g.name, err)
	}
	return enc.Close()
}

// ReadConfig parses a YAML graph config. The result is not validated;
// callers either call Validate or pass it to FromConfig, which does.
func ReadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("graph: decoding config: %w", err)
	}
	return &cfg, nil
}

// FromConfig rebuilds a graph by replaying the config's step sequence
// against caller-supplied module instances, keyed by module name. Manual
// outputs are restored when the config carries them. Validation failures
// (bad mode, unknown modules, out-of-range references, unknown ports) are
// aggregated so the caller sees every problem at once.
func FromConfig(cfg *Config, modules map[string]Module, opts ...Option) (*Graph, error) {
	err := cfg.Validate()
	for i, sc := range cfg.Steps {
		m, ok := modules[sc.Module]
		if !ok {
			if sc.Module != "" {
				err = multierr.Append(err, &NotFoundError{Label: "module", Key: sc.Module, Scope: cfg.Name})
			}
			continue
		}
		for _, port := range sortedPorts(sc.Inputs) {
			if !m.InputPorts().Has(port) {
				err = multierr.Append(err, &NotFoundError{Label: "input port", Key: port, Scope: m.Name()})
			}
			err = multierr.Append(err, checkRef(cfg, modules, sc.Inputs[port], i))
		}
	}
	for _, oc := range cfg.Outputs {
		err = multierr.Append(err, checkRef(cfg, modules, oc.Tensor, len(cfg.Steps)))
	}
	if err != nil {
		return nil, err
	}

	mode, _ := ParseOperationMode(cfg.Mode)
	g := New(mode, append([]Option{WithName(cfg.Name)}, opts...)...)
	err = g.Compose(func(b *Builder) error {
		rows := make([][]*Tensor, len(cfg.Steps))
		for i, sc := range cfg.Steps {
			in := make(Inputs, len(sc.Inputs))
			for port, ref := range sc.Inputs {
				in[port] = tensorAt(rows[ref.Step], ref.Port)
			}
			row, invokeErr := b.Invoke(modules[sc.Module], in)
			if invokeErr != nil {
				return invokeErr
			}
			rows[i] = row
		}
		for _, oc := range cfg.Outputs {
			if bindErr := b.SetOutput(oc.Name, tensorAt(rows[oc.Tensor.Step], oc.Tensor.Port)); bindErr != nil {
				return bindErr
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// tensorRef converts a graph-internal port reference to its config form.
func (r PortRef) tensorRef() TensorRef {
	return TensorRef{Step: r.Step, Port: r.Port}
}

// checkRef verifies that a reference into steps [0, limit) names a declared
// output port of the referenced module. Range errors were already reported
// by Validate and are skipped here.
func checkRef(cfg *Config, modules map[string]Module, ref TensorRef, limit int) error {
	if ref.Step < 0 || ref.Step >= limit {
		return nil
	}
	producer, ok := modules[cfg.Steps[ref.Step].Module]
	if !ok || producer.OutputPorts().Has(ref.Port) {
		return nil
	}
	return &NotFoundError{Label: "output port", Key: ref.Port, Scope: producer.Name()}
}

// tensorAt returns the tensor a validated reference points to.
func tensorAt(row []*Tensor, port string) *Tensor {
	for _, t := range row {
		if t.Name() == port {
			return t
		}
	}
	return nil
}

// sortedPorts returns the map keys in a stable order so aggregated errors
// and replays are deterministic.
func sortedPorts(refs map[string]TensorRef) []string {
	ports := make([]string, 0, len(refs))
	for port := range refs {
		ports = append(ports, port)
	}
	sort.Strings(ports)
	return ports
}
