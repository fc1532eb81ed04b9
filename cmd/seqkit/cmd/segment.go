package cmd

import (
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/seqkit/foundation/core/log"
)

func newSplitCmd(a *app) *cobra.Command {
	var (
		sep      string
		maxsplit int
		right    bool
	)
	cmd := &cobra.Command{
		Use:   "split [HAYSTACK]",
		Short: "Split into segments",
		Long: `Splits on the literal separator --sep, or on every single whitespace
code unit when no separator is given. Runs of whitespace are not
collapsed: "a  b" yields "a", "" and "b".`,
		Example: `  seqkit split --sep , "a,b,,c"
  seqkit split --right --maxsplit 1 --sep / "usr/local/bin"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(args)
			if err != nil {
				return err
			}

			timer := a.logger.StartTimer("split").WithField("maxsplit", maxsplit)
			parts, err := s.split(sep, maxsplit, right)
			if err != nil {
				timer.StopWithError(err)
				return err
			}
			timer.WithField("segments", len(parts)).Stop()

			a.printQuoted(parts...)
			return nil
		},
	}
	cmd.Flags().StringVarP(&sep, "sep", "s", "", "separator; empty splits on whitespace")
	cmd.Flags().IntVarP(&maxsplit, "maxsplit", "n", -1, "maximum number of splits; negative is unlimited")
	cmd.Flags().BoolVarP(&right, "right", "r", false, "split from the right")
	return cmd
}

func newPartitionCmd(a *app) *cobra.Command {
	var right bool
	cmd := &cobra.Command{
		Use:     "partition SEP [HAYSTACK]",
		Short:   "Split around the first (or last) SEP into three parts",
		Example: `  seqkit partition = "level=debug"`,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(args[1:])
			if err != nil {
				return err
			}
			parts, err := s.partition(args[0], right)
			if err != nil {
				return err
			}
			a.printQuoted(parts...)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&right, "right", "r", false, "partition at the last occurrence")
	return cmd
}

func newStripCmd(a *app) *cobra.Command {
	var chars, side string
	cmd := &cobra.Command{
		Use:   "strip [HAYSTACK]",
		Short: "Remove leading and trailing characters",
		Example: `  seqkit strip "  padded  "
  seqkit strip --chars "-=" --side left "--==title==--"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(args)
			if err != nil {
				return err
			}
			result, err := s.strip(chars, side)
			if err != nil {
				return err
			}
			a.printQuoted(result)
			return nil
		},
	}
	cmd.Flags().StringVarP(&chars, "chars", "c", "", "set of characters to strip; empty strips whitespace")
	cmd.Flags().StringVar(&side, "side", "both", "both, left or right")
	return cmd
}

func newLinesCmd(a *app) *cobra.Command {
	var keepends bool
	cmd := &cobra.Command{
		Use:   "lines [HAYSTACK]",
		Short: "Split at line boundaries",
		Long: `Splits at \n, \r, \r\n, \v, \f and the separators \x1c, \x1d and \x1e.
A trailing terminator does not produce an empty final line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(args)
			if err != nil {
				return err
			}
			lines := s.lines(keepends)
			a.logger.Debug("split lines", mdwlog.Int("lines", len(lines)))
			a.printQuoted(lines...)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&keepends, "keepends", "k", false, "keep line terminators")
	return cmd
}
