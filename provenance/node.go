package provenance

// Node is a single step in a reasoning chain: what kind of step it was,
// what it consumed and produced, how confident it was, and which prior
// steps it depended on.
type Node struct {
	StepID      string
	StepType    StepType
	Timestamp   string
	Description string
	InputData   map[string]any
	OutputData  map[string]any
	Confidence  float64
	ParentIDs   []string
	Metadata    map[string]any
}
