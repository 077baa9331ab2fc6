package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Show the difficulty tiers in effect",
	Long: `Print the difficulty tiers loaded from tweety.yaml (or the built-in
defaults). A tier applies once the score is strictly greater than its
threshold; the first tier applies from the start.`,
	Args: cobra.NoArgs,
	RunE: runTiers,
}

func runTiers(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	tiers, err := cfg.TierTable()
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(tiers.Tiers()))
	for i, t := range tiers.Tiers() {
		after := "start"
		if i > 0 {
			after = "> " + strconv.Itoa(t.AfterScore)
		}
		rows = append(rows, []string{
			t.Name,
			after,
			strconv.FormatFloat(t.Gap, 'f', -1, 64),
			t.Interval().String(),
			strconv.FormatFloat(t.Speed, 'f', -1, 64),
		})
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("TIER", "SCORE", "GAP", "INTERVAL", "SPEED").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Println(tbl)
	return nil
}
