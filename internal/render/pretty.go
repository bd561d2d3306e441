package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opswiki/bfstats/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// prettyTable draws a bordered terminal preview of the same table. It is for
// eyeballing results, not for pasting into a wiki page.
func (r *Renderer) prettyTable(set *model.GroupSet) []string {
	groups := set.Groups()

	labels := []string{"Nodes", "Current", "Target", "% Comp"}
	rows := make([][]string, len(labels))
	labelWidth := 0
	for i, label := range labels {
		rows[i] = []string{label}
		if len(label) > labelWidth {
			labelWidth = len(label)
		}
	}
	widths := []int{labelWidth}
	for _, g := range groups {
		rows[0] = append(rows[0], r.displayName(g))
		rows[1] = append(rows[1], FormatCount(g.Current))
		rows[2] = append(rows[2], FormatCount(g.Target))
		rows[3] = append(rows[3], strconv.Itoa(g.Percent())+"%")
		widths = append(widths, r.widest(g))
	}

	lines := make([]string, 0, len(rows))
	for i, row := range rows {
		cells := make([]string, 0, len(row))
		for j, cell := range row {
			padded := pad(cell, widths[j])
			if i == 0 {
				padded = headerStyle.Render(padded)
			}
			cells = append(cells, padded)
		}
		lines = append(lines, strings.Join(cells, dimStyle.Render("  ")))
	}
	return strings.Split(boxStyle.Render(strings.Join(lines, "\n")), "\n")
}
