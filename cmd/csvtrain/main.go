package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/glassboxml/glassbox/glassbox"
)

func main() {
	var (
		dataPath  = flag.String("data", "", "path to an all-numeric csv file")
		hasHeader = flag.Bool("header", true, "first csv line is a header")
		inputs    = flag.Int("inputs", 0, "number of leading input columns")
		hidden    = flag.Int("hidden", 0, "hidden width, 0 selects the default")
		alpha     = flag.Float64("alpha", 0.1, "learning rate")
		epochs    = flag.Int("epochs", 100, "maximum number of epochs")
		maxErr    = flag.Float64("maxerr", 0, "also stop once the last sample error drops below this, 0 disables")
		split     = flag.Float64("split", 0.75, "fraction of rows used for training, the rest is held out")
		normalize = flag.Bool("normalize", false, "min-max normalize the input columns before training")
		history   = flag.String("history", "", "write per-sample training errors to this csv file")
	)
	flag.Parse()

	if *dataPath == "" || *inputs < 1 {
		flag.Usage()
		os.Exit(2)
	}

	tbl, err := glassbox.LoadCSV(*dataPath, *hasHeader)
	if err != nil {
		log.Fatalf("loading %s: %v", *dataPath, err)
	}
	if *normalize {
		tbl.Normalize(*inputs)
	}
	train, hold := tbl.Split(*split)
	fmt.Printf("Loaded %d samples: %d training, %d holdout, %d columns\n",
		tbl.Len(), train.Len(), hold.Len(), tbl.Cols())

	stop := glassbox.StopAfter(*epochs)
	if *maxErr > 0 {
		stop = glassbox.StopEitherOf(*epochs, *maxErr)
	}
	record := glassbox.RecordNone
	if *history != "" {
		record = glassbox.TrainingErrors
	}

	net := glassbox.New(glassbox.Config{
		Inputs: *inputs,
		Hidden: *hidden,
		Alpha:  *alpha,
		Stop:   stop,
		Record: record,
	})

	run, err := net.Train(train)
	if err != nil {
		log.Fatalf("training: %v", err)
	}
	fmt.Printf("Trained topology %s for %d epochs\n", run.Topology(), run.Epochs())
	fmt.Printf("Final sample error: %.6f, final epoch mean: %.6f\n", run.FinalError(), run.MeanError())

	if hold.Len() > 0 {
		val, err := net.Validate(hold)
		if err != nil {
			log.Fatalf("validation: %v", err)
		}
		fmt.Printf("Holdout mean error: %.6f, last sample: %.6f\n", val.MeanError(), val.FinalError())
	}

	if *history != "" {
		f, err := os.Create(*history)
		if err != nil {
			log.Fatalf("creating %s: %v", *history, err)
		}
		defer f.Close()
		if err := run.WriteErrorCSV(f); err != nil {
			log.Fatalf("writing %s: %v", *history, err)
		}
		fmt.Printf("Wrote per-sample training errors to %s\n", *history)
	}
}
