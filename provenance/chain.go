package provenance

// Chain is the complete provenance record for one reasoning task: every
// node recorded while answering it, plus the outcome.
type Chain struct {
	TaskID          string
	TaskDescription string
	StartTime       string
	EndTime         string
	Nodes           []Node
	FinalAnswer     string
	Success         bool
	ErrorMessage    string
}

// AddNode appends a node to the chain.
func (c *Chain) AddNode(n Node) {
	c.Nodes = append(c.Nodes, n)
}

// Node retrieves a node by its step ID.
func (c *Chain) Node(stepID string) (Node, bool) {
	for _, n := range c.Nodes {
		if n.StepID == stepID {
			return n, true
		}
	}
	return Node{}, false
}

// NodesByType returns every node of the given step type, in chain order.
func (c *Chain) NodesByType(t StepType) []Node {
	var out []Node
	for _, n := range c.Nodes {
		if n.StepType == t {
			out = append(out, n)
		}
	}
	return out
}
