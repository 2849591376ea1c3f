package provenance

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoActiveTask is returned by RecordStep (and its convenience
// wrappers) when called before StartTask.
var ErrNoActiveTask = errors.New("provenance: no active task; call StartTask first")

// ErrTaskAlreadyExists is returned by StartTask when a chain with the
// given task ID has already been started.
var ErrTaskAlreadyExists = errors.New("provenance: task already exists")

// Tracker manages provenance chains across one or more reasoning tasks.
// It is not safe for concurrent use: callers construct one Tracker per
// goroutine, same as the reasoner it backs.
type Tracker struct {
	chains      map[string]*Chain
	current     *Chain
	stepCounter int
}

// NewTracker constructs an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{chains: make(map[string]*Chain)}
}

// StartTask begins tracking a new reasoning task and makes it current.
// It returns ErrTaskAlreadyExists if taskID was already started.
func (t *Tracker) StartTask(taskID, description string) (*Chain, error) {
	if _, exists := t.chains[taskID]; exists {
		return nil, fmt.Errorf("%w: %q", ErrTaskAlreadyExists, taskID)
	}

	chain := &Chain{
		TaskID:          taskID,
		TaskDescription: description,
		StartTime:       time.Now().Format(time.RFC3339Nano),
		Success:         true,
	}
	t.chains[taskID] = chain
	t.current = chain
	t.stepCounter = 0
	return chain, nil
}

// EndTask finalizes a tracked task with its outcome.
func (t *Tracker) EndTask(taskID, finalAnswer string, success bool, errMessage string) {
	chain, ok := t.chains[taskID]
	if !ok {
		return
	}
	chain.EndTime = time.Now().Format(time.RFC3339Nano)
	chain.FinalAnswer = finalAnswer
	chain.Success = success
	chain.ErrorMessage = errMessage
}

// Chain returns the tracked chain for taskID.
func (t *Tracker) Chain(taskID string) (*Chain, bool) {
	c, ok := t.chains[taskID]
	return c, ok
}

// RecordStep appends a node to the current task's chain and returns its
// generated step ID.
func (t *Tracker) RecordStep(stepType StepType, description string, input, output map[string]any, confidence float64, parentIDs []string, metadata map[string]any) (string, error) {
	if t.current == nil {
		return "", ErrNoActiveTask
	}

	t.stepCounter++
	stepID := fmt.Sprintf("%s_step_%d", t.current.TaskID, t.stepCounter)

	t.current.AddNode(Node{
		StepID:      stepID,
		StepType:    stepType,
		Timestamp:   time.Now().Format(time.RFC3339Nano),
		Description: description,
		InputData:   input,
		OutputData:  output,
		Confidence:  confidence,
		ParentIDs:   parentIDs,
		Metadata:    metadata,
	})
	return stepID, nil
}

// RecordExtraction records an extraction step: text in, events and
// relations out.
func (t *Tracker) RecordExtraction(query string, events, relations []map[string]any, confidence float64, metadata map[string]any) (string, error) {
	return t.RecordStep(
		LLMExtraction,
		fmt.Sprintf("extracted %d events and %d relations", len(events), len(relations)),
		map[string]any{"query": query},
		map[string]any{"events": events, "relations": relations},
		confidence, nil, metadata,
	)
}

// RecordSymbolicConstraint records a constraint added to the solver.
func (t *Tracker) RecordSymbolicConstraint(description string, constraintData map[string]any, parentIDs []string, confidence float64) (string, error) {
	return t.RecordStep(
		SymbolicConstraint,
		fmt.Sprintf("added symbolic constraint: %s", description),
		map[string]any{"constraint_description": description},
		map[string]any{"constraint": constraintData},
		confidence, parentIDs, nil,
	)
}

// RecordSymbolicSolving records a solver run.
func (t *Tracker) RecordSymbolicSolving(problem string, solution map[string]any, parentIDs []string, success bool) (string, error) {
	confidence := 0.0
	if success {
		confidence = 1.0
	}
	return t.RecordStep(
		SymbolicSolving,
		fmt.Sprintf("solved symbolic constraints: %s", problem),
		map[string]any{"problem": problem},
		map[string]any{"solution": solution, "success": success},
		confidence, parentIDs, nil,
	)
}

// RecordVerification records a verification step.
func (t *Tracker) RecordVerification(description string, verified bool, details map[string]any, parentIDs []string) (string, error) {
	confidence := 0.5
	if verified {
		confidence = 1.0
	}
	return t.RecordStep(
		Verification,
		fmt.Sprintf("verification: %s", description),
		map[string]any{"verification_type": description},
		map[string]any{"verified": verified, "details": details},
		confidence, parentIDs, nil,
	)
}

// RecordConflictResolution records how a detected conflict was resolved.
func (t *Tracker) RecordConflictResolution(description string, resolution map[string]any, parentIDs []string) (string, error) {
	return t.RecordStep(
		ConflictResolution,
		fmt.Sprintf("resolved conflict: %s", description),
		map[string]any{"conflict": description},
		map[string]any{"resolution": resolution},
		0.9, parentIDs, nil,
	)
}
