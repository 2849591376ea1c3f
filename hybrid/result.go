// Package hybrid implements the orchestrator that ties an extractor,
// the Allen-algebra constraint solver, and the provenance log together:
// extract -> lift -> solve -> verify -> reconcile -> answer, with every
// stage recorded for later explanation.
package hybrid

// Result is the payload returned to a caller of Reasoner.Reason.
type Result struct {
	Question            string
	LLMAnswer            string
	SymbolicAnswer       string
	SymbolicAnswerKnown  bool
	VerifiedAnswer       string
	Confidence           float64
	LLMConfidence        float64
	SymbolicConfidence   float64
	UsedSymbolic         bool
	ConflictsDetected    []string
	Explanation          string
	ProvenanceTaskID     string
}

// Comparison is the result of CompareWithPureExtractor: a side-by-side
// view of the hybrid pipeline's answer against the extractor's own raw
// query answer for the same question.
type Comparison struct {
	Question           string
	PureAnswer         string
	HybridAnswer       string
	HybridConfidence   float64
	UsedSymbolic       bool
	ConflictCount      int
}
