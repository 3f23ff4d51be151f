package sheet

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"depsheet/pkg/gradle"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36")).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Padding(0, 1)
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// tableEmitter renders a bordered terminal table. Meant for humans; pipe
// into csv/tsv/json for machines.
type tableEmitter struct{}

func (tableEmitter) Emit(w io.Writer, artifacts []gradle.Artifact) error {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers("GROUP", "NAME", "VERSION")

	for _, a := range artifacts {
		t.Row(a.Group, a.Name, a.Version)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
