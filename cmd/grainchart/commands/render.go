package commands

import (
	"fmt"
	"image"
	"io"

	"github.com/spf13/cobra"

	"github.com/iafilius/GrainEye/src/applog"
	"github.com/iafilius/GrainEye/src/chart"
	"github.com/iafilius/GrainEye/src/grain"
)

const renderExample = `  # Both charts as PNG and SVG into ./out
  grainchart render --out out

  # A custom dataset, PNG only, with tick labels
  grainchart render --out out --dataset bins.jsonl --format png --ticks

  # Print the drawing operations instead of writing files
  grainchart render --dump-ops`

type renderArgs struct {
	out     string
	width   int
	height  int
	dataset string
	ticks   bool
	format  string
	theme   string
	dumpOps bool
}

// NewRenderCmd returns the render command.
func NewRenderCmd(root *RootArgs) *cobra.Command {
	args := &renderArgs{}

	cmd := &cobra.Command{
		Use:     "render",
		Short:   "Render the histogram and cumulative curve",
		Example: renderExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := root.Config()
			if args.width == 0 {
				args.width = cfg.Charts.Width
			}
			if args.height == 0 {
				args.height = cfg.Charts.Height
			}
			if !cmd.Flags().Changed("ticks") {
				args.ticks = cfg.Charts.Ticks
			}
			if args.dataset == "" {
				args.dataset = cfg.Analysis.DatasetFile
			}
			if args.out == "" {
				args.out = cfg.Export.Dir
			}

			ds, err := grain.ProviderFor(args.dataset).Dataset(cmd.Context())
			if err != nil {
				return err
			}
			opts := []chart.Option{chart.WithTicks(args.ticks)}
			switch args.theme {
			case "dark":
			case "light":
				opts = append(opts, chart.WithTheme(chart.LightTheme()))
			default:
				return fmt.Errorf("%w: unknown theme %q (want dark or light)", ErrInvalidArgument, args.theme)
			}

			if args.dumpOps {
				return dumpOps(cmd.OutOrStdout(), ds, args.width, args.height, opts)
			}
			if args.out == "" {
				return fmt.Errorf("%w: --out is required", ErrInvalidArgument)
			}
			f, err := chart.ParseFormat(args.format)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}
			paths, err := chart.ExportAll(args.out, ds, args.width, args.height, f, opts...)
			if err != nil {
				return fmt.Errorf("failed to render charts: %w", err)
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			applog.Infof("rendered %d files into %s", len(paths), args.out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&args.out, "out", "o", "", "Output directory")
	cmd.Flags().IntVar(&args.width, "width", 0, "Chart width in pixels (default from config)")
	cmd.Flags().IntVar(&args.height, "height", 0, "Chart height in pixels (default from config)")
	cmd.Flags().StringVarP(&args.dataset, "dataset", "d", "", "JSON-lines dataset file")
	cmd.Flags().BoolVar(&args.ticks, "ticks", false, "Draw tick labels")
	cmd.Flags().StringVarP(&args.format, "format", "f", "both", "Output format: png, svg or both")
	cmd.Flags().StringVar(&args.theme, "theme", "dark", "Colour theme: dark or light")
	cmd.Flags().BoolVar(&args.dumpOps, "dump-ops", false, "Print the drawing operations instead of writing files")
	must(cmd.MarkFlagDirname("out"))
	must(cmd.MarkFlagFilename("dataset", "jsonl"))

	return cmd
}

// dumpOps records both charts and prints one line per drawing call.
func dumpOps(w io.Writer, ds grain.Dataset, width, height int, opts []chart.Option) error {
	s := chart.Surface{Bounds: image.Rect(0, 0, width, height)}
	for _, kind := range []chart.Kind{chart.Histogram, chart.Cumulative} {
		var rec chart.Recorder
		if err := chart.Render(&rec, s, kind, ds, opts...); err != nil {
			return err
		}
		fmt.Fprintf(w, "# %s (%d ops)\n", kind, len(rec.Ops))
		for _, op := range rec.Ops {
			fmt.Fprintln(w, formatOp(op))
		}
	}
	return nil
}

func formatOp(op chart.Op) string {
	switch op.Name {
	case "PopClip":
		return op.Name
	case "PushClip", "FillRect", "StrokeRect", "StrokeRoundedRect":
		return fmt.Sprintf("%s %v", op.Name, op.Rect)
	case "Text":
		return fmt.Sprintf("%s %q at %v", op.Name, op.Text, op.Points[0])
	case "FillCircle":
		return fmt.Sprintf("%s %v r=%g", op.Name, op.Points[0], op.Radius)
	default:
		return fmt.Sprintf("%s %v w=%g", op.Name, op.Points, op.Width)
	}
}
