package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Nikolay-Lysenko/renovation/pkg/config"
)

// elementsCommand creates the elements command for inspecting element types.
func (c *CLI) elementsCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "elements",
		Short: "List the element types accepted in configurations",
		Long: `List the element types accepted in configurations.

Each row shows a type usable in the "type" key of a config element entry
together with the parameters that entry accepts. Use --interactive to
browse the list and inspect one type at a time.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return c.runElementsInteractive()
			}
			return runElementsTable()
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse element types in an interactive list")

	return cmd
}

// kindRows collects one row per registered element type: the type name and
// its comma-joined parameter list, sorted by name.
func kindRows() ([][]string, error) {
	kinds := config.Kinds()
	rows := make([][]string, 0, len(kinds))
	for _, kind := range kinds {
		params, err := config.Parameters(kind)
		if err != nil {
			return nil, err
		}
		rows = append(rows, []string{kind, strings.Join(params, ", ")})
	}
	return rows, nil
}

// runElementsTable prints all element types as a bordered table.
func runElementsTable() error {
	rows, err := kindRows()
	if err != nil {
		return err
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Type", "Parameters").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			return StyleDim
		})

	fmt.Println(t.Render())
	printDetail("%d element types registered", len(rows))
	return nil
}

// runElementsInteractive opens the bubbletea browser and prints the
// parameters of whichever type the user selected.
func (c *CLI) runElementsInteractive() error {
	rows, err := kindRows()
	if err != nil {
		return err
	}

	model, err := tea.NewProgram(NewKindListModel(rows)).Run()
	if err != nil {
		return fmt.Errorf("interactive browser: %w", err)
	}

	final, ok := model.(KindListModel)
	if !ok || final.Selected == "" {
		return nil
	}

	params, err := config.Parameters(final.Selected)
	if err != nil {
		return err
	}
	printKeyValue("type", final.Selected)
	printKeyValue("parameters", strings.Join(params, ", "))
	return nil
}
