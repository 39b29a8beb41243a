package tui

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/prefixer/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func joinValues(vals []int64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func renderRun(t Theme, run domain.TransformRun, width int) string {
	if width <= 0 {
		width = 80
	}
	var b strings.Builder

	b.WriteString(t.Label.Render("Sequence"))
	b.WriteString(run.SequenceName)
	b.WriteString("\n")
	if run.SequencePath != "" {
		b.WriteString(t.Label.Render("Source"))
		b.WriteString(clampString(run.SequencePath, width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(t.Label.Render("Input"))
	b.WriteString(clampString(joinValues(run.Input), width))
	b.WriteString("\n")
	b.WriteString(t.Label.Render("Output"))
	b.WriteString(t.Value.Render(clampString(joinValues(run.Output), width)))
	b.WriteString("\n\n")
	b.WriteString(t.Help.Render("took " + run.Duration().String()))

	return b.String()
}
