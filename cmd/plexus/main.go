// Package main provides the Plexus ML Framework CLI.
package main

import (
	"fmt"
	"os"

	"github.com/plexus-ml/plexus/graph"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Plexus ML Framework %s\n", version)
			return
		case "describe":
			if len(os.Args) < 3 {
				fmt.Fprintln(os.Stderr, "usage: plexus describe <config.yaml>")
				os.Exit(2)
			}
			if err := describe(os.Args[2]); err != nil {
				fmt.Fprintf(os.Stderr, "plexus: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("Plexus ML Framework - Neural Graph Composition for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version               Show version")
	fmt.Println("  describe <config>     Describe an exported graph config")
}

// describe prints the topology stored in a graph config file.
func describe(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cfg, err := graph.ReadConfig(f)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}

	fmt.Printf("graph %q (mode=%s, steps=%d)\n", cfg.Name, cfg.Mode, len(cfg.Steps))
	for i, step := range cfg.Steps {
		fmt.Printf("  %d: %s", i, step.Module)
		if len(step.Inputs) > 0 {
			fmt.Printf("  inputs=%d", len(step.Inputs))
		}
		fmt.Println()
	}
	if len(cfg.Outputs) > 0 {
		fmt.Println("outputs (manual):")
		for _, out := range cfg.Outputs {
			fmt.Printf("  %s <- step %d port %s\n", out.Name, out.Tensor.Step, out.Tensor.Port)
		}
	}
	return nil
}
