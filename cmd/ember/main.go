// Package main provides the Ember CLI.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/ember-ml/ember/internal/nn"
	"github.com/ember-ml/ember/internal/train"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("Ember %s\n", version)
	case "train":
		runTrain(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "ember: unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("Ember - a scalar autograd engine and MLP trainer")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  train      Train a small MLP on the built-in regression dataset")
}

// runTrain fits an MLP(3, [4,4,1]) to a four-sample regression dataset and
// prints the loss per step.
func runTrain(args []string) {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	steps := fs.Int("steps", 20, "Number of gradient-descent steps")
	lr := fs.Float64("lr", 0.05, "Learning rate")
	seed := fs.Int64("seed", 1, "Random seed for parameter initialization")
	fs.Parse(args)

	data := []train.Sample{
		{Inputs: []float64{2.0, 3.0, -1.0}, Target: 1.0},
		{Inputs: []float64{3.0, -1.0, 0.5}, Target: -1.0},
		{Inputs: []float64{0.5, 1.0, 1.0}, Target: -1.0},
		{Inputs: []float64{1.0, 1.0, -1.0}, Target: 1.0},
	}

	rng := rand.New(rand.NewSource(*seed))
	model := nn.NewMLP(3, []int{4, 4, 1}, rng)
	fmt.Printf("Model: MLP(3, [4 4 1]), %d trainable parameters\n", len(model.Parameters()))
	fmt.Printf("Training: %d steps, lr=%g, %d samples\n\n", *steps, *lr, len(data))

	history := train.Fit(model, data, train.Config{
		LR:    *lr,
		Steps: *steps,
		OnStep: func(step int, loss float64) {
			fmt.Printf("step %3d: loss=%.6f\n", step, loss)
		},
	})

	fmt.Printf("\nLoss: %.6f -> %.6f\n", history[0], history[len(history)-1])
}
