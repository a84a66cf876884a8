package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/RenTrieu/Ares/internal/types"
)

// newReportRenderer builds the glamour renderer used for both success
// and failure reports, matching the teacher's pattern of a
// WithAutoStyle/WithWordWrap term renderer built once per view (e.g.
// cmd/nerd/ui/autopoiesis_page.go).
func newReportRenderer() *glamour.TermRenderer {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	return r
}

// renderSolution renders a successful Solution as Markdown (§6 Public
// API "a human-readable report of the winning decoder chain").
func renderSolution(sol types.Solution) string {
	var sb strings.Builder
	sb.WriteString("# Solution found\n\n")
	fmt.Fprintf(&sb, "**Plaintext:** `%s`\n\n", string(sol.Plaintext))
	fmt.Fprintf(&sb, "**Elapsed:** %dms\n\n", sol.ElapsedMS)
	sb.WriteString("## Decoder chain\n\n")
	for i, step := range sol.Path {
		fmt.Fprintf(&sb, "%d. **%s** — %s\n", i+1, step.Name, step.Description)
	}
	return renderOrPlain(sb.String())
}

// renderFailure renders a TimedOut/Exhausted report (§4.4 termination
// conditions ii/iii): the search's own error plus whatever partial
// progress is known, so a human operator has something actionable.
func renderFailure(input types.Text, err error) string {
	var sb strings.Builder
	sb.WriteString("# No solution found\n\n")
	fmt.Fprintf(&sb, "**Input:** `%s`\n\n", string(input))
	fmt.Fprintf(&sb, "**Reason:** %s\n", err.Error())
	return renderOrPlain(sb.String())
}

func renderOrPlain(markdown string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = markdown
		}
	}()
	renderer := newReportRenderer()
	if renderer == nil {
		return markdown
	}
	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}
