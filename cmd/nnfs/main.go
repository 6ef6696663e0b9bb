// Package main provides the nnfs CLI.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("nnfs %s\n", version)
	case "demo":
		if err := runDemo(os.Args[2:]); err != nil {
			slog.Error("demo failed", "err", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("nnfs - neural network layers with explicit backpropagation")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Run one forward/backward pass through a sample network")
}

type demoConfig struct {
	batch   int
	inputs  int
	hidden  int
	classes int
	l2      float64
	seed    uint64
}

func parseDemoFlags(args []string) (demoConfig, error) {
	var cfg demoConfig
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.IntVar(&cfg.batch, "batch", 8, "rows per batch")
	fs.IntVar(&cfg.inputs, "inputs", 4, "input features")
	fs.IntVar(&cfg.hidden, "hidden", 16, "hidden units")
	fs.IntVar(&cfg.classes, "classes", 3, "output classes")
	fs.Float64Var(&cfg.l2, "l2", 1e-3, "L2 strength on weights (0 disables)")
	fs.Uint64Var(&cfg.seed, "seed", 1, "seed for the synthetic batch")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.batch <= 0 || cfg.inputs <= 0 || cfg.hidden <= 0 || cfg.classes <= 0 {
		return cfg, fmt.Errorf("sizes must be positive")
	}
	return cfg, nil
}
