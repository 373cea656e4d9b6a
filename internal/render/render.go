package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"elevhtn/internal/domain"
	"elevhtn/internal/htn"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
	stepStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801")).Width(4).Align(lipgloss.Right)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#5B8DEF")).Padding(0, 1)
	methodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
)

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
}

func names(objs []domain.Object) string {
	out := make([]string, len(objs))
	for i, o := range objs {
		out[i] = o.Name
	}
	return strings.Join(out, " ")
}

// Problem summarises p. fp may be empty.
func Problem(p domain.Problem, fp domain.Fingerprint) string {
	lines := []string{titleStyle.Render(p.Name)}
	if fp != "" {
		lines = append(lines, row("fingerprint", fp.String()))
	}
	var objs []string
	for _, t := range p.Types {
		if of := p.ObjectsOfType(t.Name); len(of) > 0 {
			objs = append(objs, row(t.Name, names(of)))
		}
	}
	lines = append(lines, objs...)

	initial := make([]string, len(p.Initial))
	for i, a := range p.Initial {
		initial[i] = htn.Key(a.Fluent, a.Args...) + " = " + a.Value.String()
	}
	lines = append(lines,
		row("initial", strings.Join(initial, "\n")),
		row("actions", strconv.Itoa(len(p.Actions))),
		row("methods", strconv.Itoa(len(p.Methods))),
	)

	goals := make([]string, len(p.Goals))
	for i, g := range p.Goals {
		goals[i] = htn.GroundTask{Name: g.Task, Args: g.Args}.String()
	}
	if len(goals) == 0 {
		lines = append(lines, row("goals", mutedStyle.Render("none")))
	} else {
		lines = append(lines, row("goals", strings.Join(goals, "\n")))
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Decompositions lists applicable methods and their ordered subtasks.
func Decompositions(goal string, ds []htn.Decomposition) string {
	lines := []string{titleStyle.Render(goal)}
	if len(ds) == 0 {
		lines = append(lines, mutedStyle.Render("no applicable method"))
	}
	for _, d := range ds {
		lines = append(lines, methodStyle.Render(d.Method))
		if len(d.Subtasks) == 0 {
			lines = append(lines, mutedStyle.Render("  (no subtasks)"))
		}
		for i, st := range d.Subtasks {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, stepStyle.Render(strconv.Itoa(i+1)), " ", st.String()))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Plan lists the steps of plan.
func Plan(plan domain.Plan) string {
	header := fmt.Sprintf("%s %s", okStyle.Render("plan"), titleStyle.Render(string(plan.Problem)))
	lines := []string{
		header,
		row("fingerprint", plan.Fingerprint.String()),
		row("request", string(plan.RequestID)),
		row("steps", strconv.Itoa(len(plan.Actions))),
	}
	for i, a := range plan.Actions {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, stepStyle.Render(strconv.Itoa(i+1)), " ", a.String()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// List renders stored problem names, one per line.
func List(names []domain.ProblemName) string {
	if len(names) == 0 {
		return mutedStyle.Render("no problems stored")
	}
	lines := make([]string, len(names))
	for i, n := range names {
		lines[i] = valueStyle.Render(string(n))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
