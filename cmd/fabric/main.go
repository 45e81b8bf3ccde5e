/*
Command fabric computes the area of overlapping rectangle claims.

	fabric overlap [--verify] [--format text|html] [--color auto|always|never] FILE
	fabric columns FILE
	fabric tree --at X FILE

Claims are read from FILE, one per line, in the notation "#123 @ 3,2: 5x4".
*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/fabric"
	"github.com/npillmayer/fabric/claims"
	"github.com/npillmayer/fabric/report"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "fabric",
		Short:        "Compute the overlap area of rectangle claims",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupTracing(newFlagConfig(cmd))
		},
	}
	root.PersistentFlags().String("trace", "Error", "trace level (Error, Info, Debug)")
	root.AddCommand(newOverlapCommand(), newColumnsCommand(), newTreeCommand())
	return root
}

func setupTracing(conf *flagConfig) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

func tracer() tracing.Trace {
	return tracing.Select("fabric")
}

// --- Commands --------------------------------------------------------------

func newOverlapCommand() *cobra.Command {
	var verify bool
	cmd := &cobra.Command{
		Use:   "overlap FILE",
		Short: "Print the area claimed by two or more claims",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := newFlagConfig(cmd)
			w, err := writerFor(conf)
			if err != nil {
				return err
			}
			cs, err := claims.Load(args[0])
			if err != nil {
				return err
			}
			summary, err := report.Summarize(args[0], cs, false)
			if err != nil {
				return err
			}
			if verify {
				if err := verifyOverlap(cs, summary.OverlapArea); err != nil {
					return err
				}
			}
			return w.Write(cmd.OutOrStdout(), summary)
		},
	}
	cmd.Flags().BoolVar(&verify, "verify", false, "cross-check the result by counting single cells")
	cmd.Flags().String("format", "text", "output format (text, html)")
	cmd.Flags().String("color", "auto", "colored output (auto, always, never)")
	return cmd
}

func writerFor(conf *flagConfig) (report.Writer, error) {
	switch format := conf.GetString("format"); format {
	case "text":
		mode, err := report.ParseColorMode(conf.GetString("color"))
		if err != nil {
			return nil, err
		}
		return report.NewConsole(mode), nil
	case "html":
		return report.HTML{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

func verifyOverlap(cs []claims.Claim, area int) error {
	naive, err := fabric.NaiveOverlapArea(claims.Rectangles(cs))
	if err != nil {
		return err
	}
	if naive != area {
		return fmt.Errorf("verification failed: sweep has %d, cell count has %d", area, naive)
	}
	tracer().Infof("verified overlap area %d", area)
	return nil
}

func newColumnsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "columns FILE",
		Short: "Print every column of the sweep",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSweeper(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, col := range s.Columns() {
				fmt.Fprintln(out, col)
			}
			_, err = fmt.Fprintf(out, "total %d\n", s.Total())
			return err
		},
	}
}

func newTreeCommand() *cobra.Command {
	var at int
	cmd := &cobra.Command{
		Use:   "tree --at X FILE",
		Short: "Write the column tree at sweep position X in Graphviz DOT format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSweeper(args[0])
			if err != nil {
				return err
			}
			if err := sweepTo(s, at); err != nil {
				return err
			}
			return s.Tree().Dot(cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&at, "at", 0, "X position of the sweep line")
	cmd.MarkFlagRequired("at")
	return cmd
}

func loadSweeper(name string) (*fabric.Sweeper, error) {
	cs, err := claims.Load(name)
	if err != nil {
		return nil, err
	}
	return fabric.NewSweeper(claims.Rectangles(cs))
}

// sweepTo steps s until the column containing x has been processed.
func sweepTo(s *fabric.Sweeper, x int) error {
	for {
		col, ok := s.Step()
		if !ok || col.X > x {
			return fmt.Errorf("x=%d lies outside of all claims", x)
		}
		if x < col.X+col.Width {
			tracer().Debugf("column tree at x=%d has %d boundaries", x, s.Tree().Len())
			return nil
		}
	}
}
