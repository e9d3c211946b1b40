package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/trajsim/internal/export"
	"github.com/san-kum/trajsim/internal/storage"
)

func newExportCSVCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export-csv [run_id] [vacuum|drag]",
		Short: "write a stored trajectory as CSV to stdout",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := "drag"
			if len(args) == 2 {
				kind = args[1]
			}

			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			traj, err := st.LoadTrajectory(args[0], kind)
			if err != nil {
				return err
			}
			if traj.Len() == 0 {
				return fmt.Errorf("no data to export")
			}
			return storage.WriteTrajectoryCSV(os.Stdout, traj)
		},
	}
}

func newExportSVGCmd() *cobra.Command {
	var (
		outFile             string
		imgWidth, imgHeight int
	)
	cmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render the comparison as an SVG chart",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cmp, err := comparisonFor(cmd, args)
			if err != nil {
				return err
			}

			opts := export.DefaultSVGOptions()
			if cmd.Flags().Changed("width") {
				opts.Width = imgWidth
			}
			if cmd.Flags().Changed("height") {
				opts.Height = imgHeight
			}
			svg := export.ComparisonToSVG(cmp, opts)

			if outFile == "" || outFile == "-" {
				_, err := fmt.Print(svg)
				return err
			}
			if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", outFile)
			return nil
		},
	}
	addLaunchFlags(cmd)
	cmd.Flags().StringVarP(&outFile, "out", "o", "trajectory.svg", "output file (- for stdout)")
	cmd.Flags().IntVar(&imgWidth, "width", 1000, "image width (px)")
	cmd.Flags().IntVar(&imgHeight, "height", 600, "image height (px)")
	return cmd
}

func newExportGIFCmd() *cobra.Command {
	var (
		outFile             string
		imgWidth, imgHeight int
		maxFrames           int
	)
	cmd := &cobra.Command{
		Use:   "export-gif [run_id]",
		Short: "render the flights as an animated GIF",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cmp, err := comparisonFor(cmd, args)
			if err != nil {
				return err
			}

			opts := export.DefaultGIFOptions()
			if cmd.Flags().Changed("width") {
				opts.Width = imgWidth
			}
			if cmd.Flags().Changed("height") {
				opts.Height = imgHeight
			}
			opts.MaxFrames = maxFrames

			f, err := os.Create(outFile)
			if err != nil {
				return err
			}
			if err := export.WriteGIF(f, cmp, opts); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%d frames)\n", outFile, len(cmp.FrameIndices(opts.MaxFrames)))
			return nil
		},
	}
	addLaunchFlags(cmd)
	cmd.Flags().StringVarP(&outFile, "out", "o", "trajectory.gif", "output file")
	cmd.Flags().IntVar(&imgWidth, "width", 640, "image width (px)")
	cmd.Flags().IntVar(&imgHeight, "height", 400, "image height (px)")
	cmd.Flags().IntVar(&maxFrames, "max-frames", 300, "frame cap (0 = one per sample)")
	return cmd
}
