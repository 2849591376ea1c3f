package provenance

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Format selects the rendering Explain produces.
type Format uint8

const (
	FormatText Format = iota
	FormatHTML
	FormatTable
)

const maxSnapshotLen = 100

// Explain renders a human-readable account of how a task's answer was
// reached. The text format colors its status and step labels through
// fatih/color, which leaves them plain when stdout is not a terminal;
// the table and HTML formats are never colored.
func (t *Tracker) Explain(taskID string, format Format) (string, error) {
	chain, ok := t.chains[taskID]
	if !ok {
		return fmt.Sprintf("no provenance found for task %s", taskID), nil
	}

	switch format {
	case FormatHTML:
		return explainHTML(chain), nil
	case FormatTable:
		return explainTable(chain), nil
	default:
		return explainText(chain, isTerminal(os.Stdout)), nil
	}
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return fd == uintptr(1) || fd == uintptr(2)
}

func explainText(chain *Chain, useColor bool) string {
	colorize := func(s string, attr color.Attribute) string {
		if !useColor {
			return s
		}
		return color.New(attr).Sprint(s)
	}

	var b strings.Builder
	rule := strings.Repeat("=", 80)

	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "REASONING EXPLANATION: %s\n", chain.TaskDescription)
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Task ID: %s\n", chain.TaskID)
	fmt.Fprintf(&b, "Started: %s\n", chain.StartTime)
	completed := chain.EndTime
	if completed == "" {
		completed = "in progress"
	}
	fmt.Fprintf(&b, "Completed: %s\n", completed)

	status := colorize("SUCCESS", color.FgGreen)
	if !chain.Success {
		status = colorize("FAILED", color.FgRed)
	}
	fmt.Fprintf(&b, "Status: %s\n", status)
	if chain.ErrorMessage != "" {
		fmt.Fprintf(&b, "Error: %s\n", chain.ErrorMessage)
	}
	b.WriteString("\n")

	b.WriteString("REASONING STEPS:\n")
	fmt.Fprintln(&b, strings.Repeat("-", 80))

	for i, n := range chain.Nodes {
		label := strings.ToUpper(strings.ReplaceAll(n.StepType.String(), "_", " "))
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, colorize(label, color.FgCyan))
		fmt.Fprintf(&b, "   ID: %s\n", n.StepID)
		fmt.Fprintf(&b, "   Description: %s\n", n.Description)
		fmt.Fprintf(&b, "   Confidence: %.2f\n", n.Confidence)
		if len(n.ParentIDs) > 0 {
			fmt.Fprintf(&b, "   Depends on: %s\n", strings.Join(n.ParentIDs, ", "))
		}
		if len(n.InputData) > 0 {
			fmt.Fprintf(&b, "   Input: %s\n", summarize(n.InputData))
		}
		if len(n.OutputData) > 0 {
			fmt.Fprintf(&b, "   Output: %s\n", summarize(n.OutputData))
		}
	}

	b.WriteString("\n")
	fmt.Fprintln(&b, strings.Repeat("-", 80))
	answer := chain.FinalAnswer
	if answer == "" {
		answer = "not yet determined"
	}
	fmt.Fprintf(&b, "FINAL ANSWER: %s\n", answer)
	fmt.Fprintln(&b, rule)

	return b.String()
}

func explainHTML(chain *Chain) string {
	var b strings.Builder
	b.WriteString("<div class='provenance-explanation'>\n")
	fmt.Fprintf(&b, "<h2>Reasoning Explanation: %s</h2>\n", chain.TaskDescription)
	fmt.Fprintf(&b, "<p><strong>Task ID:</strong> %s</p>\n", chain.TaskID)
	status := "SUCCESS"
	if !chain.Success {
		status = "FAILED"
	}
	fmt.Fprintf(&b, "<p><strong>Status:</strong> %s</p>\n", status)

	b.WriteString("<div class='reasoning-steps'>\n<h3>Reasoning Steps</h3>\n<ol>\n")
	for _, n := range chain.Nodes {
		confidenceClass := "low"
		switch {
		case n.Confidence > 0.8:
			confidenceClass = "high"
		case n.Confidence > 0.5:
			confidenceClass = "medium"
		}
		fmt.Fprintf(&b, "<li class='step step-%s'>\n", n.StepType.String())
		fmt.Fprintf(&b, "<h4>%s</h4>\n", titleCase(strings.ReplaceAll(n.StepType.String(), "_", " ")))
		fmt.Fprintf(&b, "<p>%s</p>\n", n.Description)
		fmt.Fprintf(&b, "<p class='confidence confidence-%s'>Confidence: %.2f</p>\n", confidenceClass, n.Confidence)
		b.WriteString("</li>\n")
	}
	b.WriteString("</ol>\n</div>\n")

	fmt.Fprintf(&b, "<div class='final-answer'>\n<h3>Final Answer</h3>\n<p>%s</p>\n</div>\n",
		orDefault(chain.FinalAnswer, "not yet determined"))
	b.WriteString("</div>\n")
	return b.String()
}

// explainTable renders the node list as a table, grounded on the same
// tablewriter usage the teacher's relation formatter uses.
func explainTable(chain *Chain) string {
	var out strings.Builder
	fmt.Fprintf(&out, "%s (%s)\n", chain.TaskDescription, chain.TaskID)

	table := tablewriter.NewTable(&out)
	table.Header([]string{"#", "Step", "Description", "Confidence", "Depends On"})
	for i, n := range chain.Nodes {
		table.Append([]string{
			strconv.Itoa(i + 1),
			n.StepType.String(),
			n.Description,
			fmt.Sprintf("%.2f", n.Confidence),
			strings.Join(n.ParentIDs, ", "),
		})
	}
	table.Render()
	return out.String()
}

func summarize(data map[string]any) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, data[k]))
	}
	summary := strings.Join(parts, ", ")
	if len(summary) > maxSnapshotLen {
		summary = summary[:maxSnapshotLen-3] + "..."
	}
	return summary
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
