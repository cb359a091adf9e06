package trainer

// Record is a bitmask choosing which per-sample artifacts a run retains.
// Retention is strictly observational: any combination of flags leaves the
// trained weights and reported errors bit-identical.
type Record uint8

const (
	// TrainingOutputs retains the network outputs of every training sample.
	TrainingOutputs Record = 1 << iota
	// TrainingErrors retains the per-sample error of every training sample.
	TrainingErrors
	// WeightSnapshots retains a copy of the weights used by every training
	// sample, taken before that sample's forward pass.
	WeightSnapshots
	// GradientSnapshots retains the gradient computed from every training
	// sample.
	GradientSnapshots
	// ValidationOutputs retains the network outputs of every validation
	// sample.
	ValidationOutputs
	// ValidationErrors retains the per-sample error of every validation
	// sample.
	ValidationErrors
)

const (
	// RecordNone retains nothing.
	RecordNone Record = 0
	// RecordTraining retains every training-side artifact.
	RecordTraining = TrainingOutputs | TrainingErrors | WeightSnapshots | GradientSnapshots
	// RecordValidation retains every validation-side artifact.
	RecordValidation = ValidationOutputs | ValidationErrors
	// RecordAll retains everything.
	RecordAll = RecordTraining | RecordValidation
)

// Has reports whether every flag in q is set.
func (r Record) Has(q Record) bool { return r&q == q }
