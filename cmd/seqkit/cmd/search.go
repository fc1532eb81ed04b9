package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/seqkit/foundation/utils/seqx"
	"github.com/msto63/seqkit/foundation/utils/slicex"
)

type windowFlags struct {
	pos int
	end int
}

func (w *windowFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&w.pos, "pos", 0, "window start; negative counts from the end")
	cmd.Flags().IntVar(&w.end, "end", 0, "window end (exclusive); default is the end of the haystack")
}

func (w *windowFlags) window(cmd *cobra.Command) seqx.Window {
	if cmd.Flags().Changed("end") {
		return seqx.Bounds(w.pos, w.end)
	}
	return seqx.FromPos(w.pos)
}

func newSearchCmd(a *app, op, short string) *cobra.Command {
	var wf windowFlags
	cmd := &cobra.Command{
		Use:   op + " NEEDLE [HAYSTACK]",
		Short: short,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := wf.window(cmd)
			s, err := a.open(args[1:])
			if err != nil {
				return err
			}

			timer := a.logger.StartTimer(op).WithField("window", w.String())
			result, err := s.search(op, args[0], w)
			if err != nil {
				timer.StopWithError(err)
				return err
			}
			timer.WithField("result", result).Stop()

			a.printf("%d\n", result)
			return nil
		},
	}
	wf.register(cmd)
	return cmd
}

func newAffixCmd(a *app, op string) *cobra.Command {
	var (
		wf     windowFlags
		others []string
	)
	cmd := &cobra.Command{
		Use:   op + " CANDIDATE [HAYSTACK]",
		Short: "Report whether the haystack " + strings.TrimSuffix(op, "with") + " with any candidate",
		Example: "  seqkit " + op + ` --or .yaml --or .yml .toml "seqkit.toml"`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(args[1:])
			if err != nil {
				return err
			}
			candidates := slicex.Unique(append([]string{args[0]}, others...))

			ok, err := s.affix(op == "endswith", candidates, wf.window(cmd))
			if err != nil {
				return err
			}
			a.printf("%t\n", ok)
			return nil
		},
	}
	wf.register(cmd)
	cmd.Flags().StringArrayVar(&others, "or", nil, "additional candidate (repeatable)")
	return cmd
}
