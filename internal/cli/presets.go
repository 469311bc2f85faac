package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mobius/pkg/geom"
)

// presetsCommand creates the presets command.
func (c *CLI) presetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in base circle presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(presetTable(geom.Presets()))
			printNextStep("Draw one", "mobius pearls --preset <name>")
			return nil
		},
	}
}

// presetTable renders presets as a bordered table.
func presetTable(presets []geom.Preset) string {
	rows := make([][]string, len(presets))
	for i, p := range presets {
		name := p.Name
		if name == geom.DefaultPreset {
			name += " (default)"
		}
		rows[i] = []string{
			name,
			strconv.Itoa(len(p.Circles)),
			strconv.FormatFloat(p.BaseRadius, 'g', 4, 64),
			p.Description,
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Preset", "Circles", "Radius", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return StyleHighlight
			case col == 3:
				return StyleDim
			}
			return StyleValue
		}).
		Render()
}
