package hybrid

import (
	"context"
	"fmt"

	"github.com/dcrowell-labs/chronoverify/constraint"
	"github.com/dcrowell-labs/chronoverify/extractor"
	"github.com/dcrowell-labs/chronoverify/provenance"
)

// Reasoner is the hybrid orchestrator: it owns a task counter and a
// provenance.Tracker, and drives one extractor through the full
// extract -> lift -> solve -> verify -> reconcile -> answer pipeline
// per question. Like provenance.Tracker, it carries mutable state and
// is not safe for concurrent use; callers wanting parallelism construct
// one Reasoner per worker.
type Reasoner struct {
	Extractor   extractor.Extractor
	provenance  *provenance.Tracker
	taskCounter int
}

// NewReasoner constructs a Reasoner bound to the given extractor.
func NewReasoner(e extractor.Extractor) *Reasoner {
	return &Reasoner{
		Extractor:  e,
		provenance: provenance.NewTracker(),
	}
}

// Provenance exposes the underlying tracker, e.g. for Explain.
func (r *Reasoner) Provenance() *provenance.Tracker {
	return r.provenance
}

// Reason runs the full pipeline for one question. level may be zero to
// auto-detect it from the question's surface form.
func (r *Reasoner) Reason(ctx context.Context, question string, level extractor.Level) Result {
	if level == 0 {
		level = detectLevel(question)
	}

	r.taskCounter++
	taskID := fmt.Sprintf("task_%04d", r.taskCounter)
	if _, err := r.provenance.StartTask(taskID, question); err != nil {
		errMsg := fmt.Sprintf("error in reasoning: %v", err)
		return Result{
			Question:          question,
			LLMAnswer:         "error occurred",
			VerifiedAnswer:    "Could not determine answer: " + errMsg,
			ConflictsDetected: []string{errMsg},
			Explanation:       errMsg,
			ProvenanceTaskID:  taskID,
		}
	}

	result, err := r.reasonInner(ctx, taskID, question, level)
	if err != nil {
		errMsg := fmt.Sprintf("error in reasoning: %v", err)
		r.provenance.EndTask(taskID, "", false, errMsg)
		return Result{
			Question:           question,
			LLMAnswer:          "error occurred",
			VerifiedAnswer:     "Could not determine answer: " + errMsg,
			Confidence:         0,
			LLMConfidence:      0,
			SymbolicConfidence: 0,
			UsedSymbolic:       false,
			ConflictsDetected:  []string{errMsg},
			Explanation:        errMsg,
			ProvenanceTaskID:   taskID,
		}
	}

	r.provenance.EndTask(taskID, result.VerifiedAnswer, true, "")
	explanation, _ := r.provenance.Explain(taskID, provenance.FormatText)
	result.Explanation = explanation
	return result
}

func (r *Reasoner) reasonInner(ctx context.Context, taskID, question string, level extractor.Level) (Result, error) {
	// Step 1: extraction.
	resp, err := r.Extractor.Extract(ctx, question, level)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", extractor.ErrExtractionFailed, err)
	}
	llmConfidence := resp.Confidence(0.8)

	eventsData := make([]map[string]any, len(resp.Events))
	for i, e := range resp.Events {
		eventsData[i] = map[string]any{
			"name": e.Name, "description": e.Description,
			"start_time": e.StartTime, "end_time": e.EndTime, "duration": e.Duration,
		}
	}
	relationsData := make([]map[string]any, len(resp.Relations))
	for i, rel := range resp.Relations {
		relationsData[i] = map[string]any{
			"event1": rel.Event1, "event2": rel.Event2,
			"relation": rel.Relation, "confidence": rel.Confidence,
		}
	}
	extractStep, _ := r.provenance.RecordExtraction(question, eventsData, relationsData, llmConfidence,
		map[string]any{"level": int(level), "raw_answer": resp.RawAnswer})

	// Step 2: lift into a fresh solver. A malformed event aborts lifting
	// (the remaining events are skipped, not silently dropped one by one)
	// and is folded into "inconsistent" below, same as a solver error.
	solver := constraint.NewSolver()
	orderedNames := make([]string, 0, len(resp.Events))
	var liftErr error
	for _, e := range resp.Events {
		iv, err := extractor.LiftEvent(e)
		if err != nil {
			liftErr = fmt.Errorf("lift event %q: %w", e.Name, err)
			break
		}
		solver.AddInterval(iv)
		orderedNames = append(orderedNames, e.Name)
	}

	skipped := 0
	if liftErr == nil {
		for _, rel := range resp.Relations {
			allenRel, ok := extractor.MapRelation(rel.Relation)
			if !ok {
				skipped++
				continue
			}
			_ = solver.AddSingleRelation(rel.Event1, rel.Event2, allenRel)
		}
	}
	constraintMeta := map[string]any{"num_intervals": len(orderedNames), "num_constraints": len(resp.Relations) - skipped}
	if liftErr != nil {
		constraintMeta["lift_error"] = liftErr.Error()
	}
	constraintStep, _ := r.provenance.RecordSymbolicConstraint(
		fmt.Sprintf("converted %d extractor relations to Allen's algebra", len(resp.Relations)),
		constraintMeta,
		[]string{extractStep}, 1.0,
	)

	// Step 3: solve.
	consistent := false
	if liftErr == nil {
		propErr := solver.Propagate()
		consistent = propErr == nil
		if consistent {
			if err := solver.ComputeBounds(); err != nil {
				consistent = false
			}
		}
	}
	symbolicAnswer := synthesizeAnswer(solver, question, consistent, orderedNames)
	solveStep, _ := r.provenance.RecordSymbolicSolving(
		fmt.Sprintf("symbolic temporal reasoning (level %d)", int(level)),
		map[string]any{"consistent": consistent, "answer": symbolicAnswer},
		[]string{constraintStep}, consistent,
	)

	// Step 4: verify.
	var conflicts []string
	if !consistent {
		conflicts = append(conflicts, "symbolic constraints are inconsistent - extractor may have produced conflicting information")
	}
	if numericMismatch(resp.RawAnswer, symbolicAnswer) {
		conflicts = append(conflicts, fmt.Sprintf("numerical mismatch: extractor answer %q vs symbolic answer %q", resp.RawAnswer, symbolicAnswer))
	}
	verified := len(conflicts) == 0
	verifyStep, _ := r.provenance.RecordVerification("compare extractor and symbolic answers", verified,
		map[string]any{"llm_answer": resp.RawAnswer, "symbolic_answer": symbolicAnswer, "conflicts": conflicts},
		[]string{solveStep},
	)

	// Step 5: reconcile.
	var verifiedAnswer string
	switch {
	case verified && consistent:
		verifiedAnswer = symbolicAnswer
	case consistent:
		verifiedAnswer = symbolicAnswer
		r.provenance.RecordConflictResolution("resolved using symbolic reasoning (more reliable)",
			map[string]any{"chosen": "symbolic", "reason": "symbolic constraints are consistent"},
			[]string{verifyStep})
	default:
		verifiedAnswer = resp.RawAnswer
		r.provenance.RecordConflictResolution("using extractor answer (symbolic inconsistent)",
			map[string]any{"chosen": "extractor", "reason": "symbolic constraints inconsistent"},
			[]string{verifyStep})
	}

	// Step 6: confidence.
	symbolicConfidence := 0.5
	if consistent {
		symbolicConfidence = 1.0
	}
	var overall float64
	switch {
	case len(conflicts) == 0 && consistent:
		overall = maxFloat(llmConfidence, symbolicConfidence)
	case consistent:
		overall = symbolicConfidence
	default:
		overall = llmConfidence * 0.7
	}

	return Result{
		Question:            question,
		LLMAnswer:           resp.RawAnswer,
		SymbolicAnswer:      symbolicAnswer,
		SymbolicAnswerKnown: true,
		VerifiedAnswer:      verifiedAnswer,
		Confidence:          overall,
		LLMConfidence:       llmConfidence,
		SymbolicConfidence:  symbolicConfidence,
		UsedSymbolic:        consistent,
		ConflictsDetected:   conflicts,
		ProvenanceTaskID:    taskID,
	}, nil
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// CompareWithPureExtractor runs the full hybrid pipeline and a direct
// Extractor.Query call for the same question, returning a side-by-side
// comparison. Useful for demos/benchmarks; not part of the
// invariant-bearing core.
func (r *Reasoner) CompareWithPureExtractor(ctx context.Context, question string) (Comparison, error) {
	hybridResult := r.Reason(ctx, question, 0)

	pureAnswer, err := r.Extractor.Query(ctx, question)
	if err != nil {
		return Comparison{}, fmt.Errorf("%w: %v", extractor.ErrExtractionFailed, err)
	}

	return Comparison{
		Question:         question,
		PureAnswer:       pureAnswer,
		HybridAnswer:     hybridResult.VerifiedAnswer,
		HybridConfidence: hybridResult.Confidence,
		UsedSymbolic:     hybridResult.UsedSymbolic,
		ConflictCount:    len(hybridResult.ConflictsDetected),
	}, nil
}
