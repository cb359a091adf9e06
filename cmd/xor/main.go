package main

import (
	"fmt"
	"log"

	"github.com/glassboxml/glassbox/glassbox"
)

func main() {
	fmt.Println("=== XOR Online Backpropagation Example ===")

	in, hidden := 2, 3
	fmt.Printf("Network architecture: %d-%d-1\n", in, hidden)
	fmt.Println("Hidden activation: sigmoid, output activation: linear")
	fmt.Println("Optimizer: plain gradient descent, learning rate 0.1")

	// Each row concatenates the two inputs with the XOR target.
	rows := [][]float64{
		{0, 0, 0},
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}
	tbl, err := glassbox.NewTable(rows)
	if err != nil {
		log.Fatalf("building table: %v", err)
	}

	net := glassbox.New(glassbox.Config{
		Inputs: in,
		Hidden: hidden,
		Alpha:  0.1,
		Stop:   glassbox.StopEitherOf(5000, 0.001),
		Record: glassbox.TrainingErrors | glassbox.ValidationOutputs,
	})

	run, err := net.Train(tbl)
	if err != nil {
		log.Fatalf("training: %v", err)
	}

	for _, es := range run.EpochStats() {
		if (es.Epoch-1)%500 == 0 {
			fmt.Printf("Epoch %d, Error: %.6f\n", es.Epoch, es.Mean)
		}
	}
	fmt.Printf("Stopped after %d epochs, last sample error %.6f\n", run.Epochs(), run.FinalError())

	val, err := net.Validate(tbl)
	if err != nil {
		log.Fatalf("validation: %v", err)
	}

	fmt.Println("\nTesting trained network:")
	for i, y := range val.Outputs() {
		fmt.Printf("Input: %v, Predicted: %.4f, Target: %v\n", rows[i][:2], y[0], rows[i][2])
	}
	fmt.Printf("\nValidation mean error: %.6f\n", val.MeanError())
}
