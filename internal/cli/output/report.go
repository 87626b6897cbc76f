package output

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/tasklist/pkg/core"
)

// ProjectSummary is one row of the project report.
type ProjectSummary struct {
	Name  string `json:"name"`
	Tasks int    `json:"tasks"`
	Done  int    `json:"done"`
	Open  int    `json:"open"`
}

// Summarize counts tasks per project, preserving project order.
func Summarize(projects []core.Project) []ProjectSummary {
	out := make([]ProjectSummary, 0, len(projects))
	for _, p := range projects {
		done := p.DoneCount()
		out = append(out, ProjectSummary{
			Name:  p.Name,
			Tasks: len(p.Tasks),
			Done:  done,
			Open:  len(p.Tasks) - done,
		})
	}
	return out
}

// ProjectReport renders a per-project task summary in the effective mode.
func (r *Renderer) ProjectReport(projects []core.Project) error {
	rows := Summarize(projects)

	if r.EffectiveMode() == ModeJSON {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	if len(rows) == 0 {
		_, _ = fmt.Fprintln(r.out, "(0 projects)")
		return nil
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Project", "Tasks", "Done", "Open"})
	for _, row := range rows {
		t.AppendRow(table.Row{row.Name, row.Tasks, row.Done, row.Open})
	}

	if r.EffectiveMode() == ModeMarkdown {
		_, _ = fmt.Fprintln(r.out, t.RenderMarkdown())
		return nil
	}

	t.SetStyle(table.StyleLight)
	_, _ = fmt.Fprintln(r.out, r.styles.Heading.Render("Summary"))
	_, _ = fmt.Fprintln(r.out, t.Render())
	_, _ = fmt.Fprintf(r.out, "(%d projects)\n", len(rows))
	return nil
}
