package provenance

// ReasoningPath traces every ancestor of stepID back through its
// ParentIDs links (a breadth-first walk over the dependency DAG) and
// returns the result in chronological order (the order the steps were
// recorded in the chain), starting from the earliest ancestor and ending
// with stepID itself. Returns nil if the task or step is unknown.
func (t *Tracker) ReasoningPath(taskID, stepID string) []Node {
	chain, ok := t.chains[taskID]
	if !ok {
		return nil
	}
	target, ok := chain.Node(stepID)
	if !ok {
		return nil
	}

	visited := map[string]bool{target.StepID: true}
	queue := append([]string(nil), target.ParentIDs...)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited[id] {
			continue
		}
		parent, ok := chain.Node(id)
		if !ok {
			continue
		}
		visited[id] = true
		queue = append(queue, parent.ParentIDs...)
	}

	path := make([]Node, 0, len(visited))
	for _, n := range chain.Nodes {
		if visited[n.StepID] {
			path = append(path, n)
		}
	}
	return path
}
