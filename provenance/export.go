package provenance

import (
	"encoding/json"
	"fmt"
)

// nodeJSON and chainJSON mirror Node/Chain with the snake_case field
// names the prototype's JSON export used, kept stable as the wire
// format regardless of the Go struct's own field names.
type nodeJSON struct {
	StepID      string         `json:"step_id"`
	StepType    string         `json:"step_type"`
	Timestamp   string         `json:"timestamp"`
	Description string         `json:"description"`
	InputData   map[string]any `json:"input_data"`
	OutputData  map[string]any `json:"output_data"`
	Confidence  float64        `json:"confidence"`
	ParentIDs   []string       `json:"parent_ids"`
	Metadata    map[string]any `json:"metadata"`
}

type chainJSON struct {
	TaskID          string     `json:"task_id"`
	TaskDescription string     `json:"task_description"`
	StartTime       string     `json:"start_time"`
	EndTime         string     `json:"end_time,omitempty"`
	Nodes           []nodeJSON `json:"nodes"`
	FinalAnswer     string     `json:"final_answer,omitempty"`
	Success         bool       `json:"success"`
	ErrorMessage    string     `json:"error_message,omitempty"`
}

func toNodeJSON(n Node) nodeJSON {
	return nodeJSON{
		StepID:      n.StepID,
		StepType:    n.StepType.String(),
		Timestamp:   n.Timestamp,
		Description: n.Description,
		InputData:   n.InputData,
		OutputData:  n.OutputData,
		Confidence:  n.Confidence,
		ParentIDs:   n.ParentIDs,
		Metadata:    n.Metadata,
	}
}

func fromNodeJSON(n nodeJSON) Node {
	stepType, _ := ParseStepType(n.StepType)
	return Node{
		StepID:      n.StepID,
		StepType:    stepType,
		Timestamp:   n.Timestamp,
		Description: n.Description,
		InputData:   n.InputData,
		OutputData:  n.OutputData,
		Confidence:  n.Confidence,
		ParentIDs:   n.ParentIDs,
		Metadata:    n.Metadata,
	}
}

// ExportChain serializes the named task's chain to indented JSON.
func (t *Tracker) ExportChain(taskID string) ([]byte, error) {
	chain, ok := t.chains[taskID]
	if !ok {
		return nil, fmt.Errorf("provenance: no chain found for task %q", taskID)
	}

	cj := chainJSON{
		TaskID:          chain.TaskID,
		TaskDescription: chain.TaskDescription,
		StartTime:       chain.StartTime,
		EndTime:         chain.EndTime,
		FinalAnswer:     chain.FinalAnswer,
		Success:         chain.Success,
		ErrorMessage:    chain.ErrorMessage,
	}
	cj.Nodes = make([]nodeJSON, len(chain.Nodes))
	for i, n := range chain.Nodes {
		cj.Nodes[i] = toNodeJSON(n)
	}
	return json.MarshalIndent(cj, "", "  ")
}

// ImportChain deserializes a chain previously produced by ExportChain and
// registers it under its own task ID, returning that ID.
func (t *Tracker) ImportChain(data []byte) (string, error) {
	var cj chainJSON
	if err := json.Unmarshal(data, &cj); err != nil {
		return "", fmt.Errorf("provenance: decoding chain: %w", err)
	}

	chain := &Chain{
		TaskID:          cj.TaskID,
		TaskDescription: cj.TaskDescription,
		StartTime:       cj.StartTime,
		EndTime:         cj.EndTime,
		FinalAnswer:     cj.FinalAnswer,
		Success:         cj.Success,
		ErrorMessage:    cj.ErrorMessage,
	}
	chain.Nodes = make([]Node, len(cj.Nodes))
	for i, n := range cj.Nodes {
		chain.Nodes[i] = fromNodeJSON(n)
	}

	t.chains[chain.TaskID] = chain
	return chain.TaskID, nil
}

// ParseStepType resolves a step type by its canonical snake_case name.
func ParseStepType(s string) (StepType, bool) {
	for i := 0; i < numStepTypes; i++ {
		if stepTypeNames[i] == s {
			return StepType(i), true
		}
	}
	return 0, false
}
