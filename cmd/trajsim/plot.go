package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/trajsim/internal/viz"
)

var (
	plotWidth  int
	plotHeight int
	theme      string
)

func newPlotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "chart height over time for a stored or fresh run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label, cmp, err := comparisonFor(cmd, args)
			if err != nil {
				return err
			}

			fmt.Printf("run: %s\n", label)
			fmt.Printf("samples: vacuum %d, drag %d\n\n", cmp.Vacuum.Len(), cmp.Drag.Len())
			fmt.Println(viz.Plot(cmp, plotWidth, plotHeight))
			fmt.Println()
			return printComparison(cmp)
		},
	}
	addLaunchFlags(cmd)
	cmd.Flags().IntVar(&plotWidth, "width", 80, "chart width")
	cmd.Flags().IntVar(&plotHeight, "height", 12, "chart height")
	return cmd
}

func newLiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "live [run_id]",
		Short: "animate both flights in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label, cmp, err := comparisonFor(cmd, args)
			if err != nil {
				return err
			}
			viz.SetTheme(theme)
			return viz.Play(cmp, label)
		},
	}
	addLaunchFlags(cmd)
	cmd.Flags().StringVar(&theme, "theme", viz.ThemeClassic.Name, fmt.Sprintf("colour theme %v", viz.ThemeNames()))
	return cmd
}
