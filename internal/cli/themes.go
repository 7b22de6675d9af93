package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cristianadrielbraun/qrstyle/internal/theme"
)

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List theme presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, t := range theme.Builtin().Themes() {
				swatch := lipgloss.NewStyle().
					Background(lipgloss.Color(t.BG)).
					Foreground(lipgloss.Color(t.FG)).
					Render(" ██ ")
				if _, err := fmt.Fprintf(out, "%-10s %s %-8s %-8s %s on %s\n",
					t.Name, swatch, t.Style, t.Eye, t.FG, t.BG); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
